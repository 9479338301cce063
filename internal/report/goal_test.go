package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGoals(t *testing.T) {
	progress := Goals([]Goal{{ID: "g1", Name: "Emergency fund", Target: 10000, Saved: 2500}})

	if len(progress) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(progress))
	}
	p := progress[0]
	if p.PercentComplete != 25 {
		t.Errorf("expected 25%%, got %d", p.PercentComplete)
	}
	if !p.Remaining.Equal(decimal.NewFromInt(7500)) {
		t.Errorf("expected remaining 7500, got %s", p.Remaining)
	}
}

func TestGoals_OvershootClamps(t *testing.T) {
	p := Goals([]Goal{{ID: "g1", Name: "Trip", Target: 500, Saved: 800}})[0]

	if p.PercentComplete != 100 {
		t.Errorf("expected 100%%, got %d", p.PercentComplete)
	}
	if !p.Remaining.IsZero() {
		t.Errorf("expected remaining 0, got %s", p.Remaining)
	}
}

func TestGoals_ZeroTarget(t *testing.T) {
	p := Goals([]Goal{{ID: "g1", Name: "Unset", Target: 0, Saved: 300}})[0]
	if p.PercentComplete != 0 {
		t.Errorf("zero target must yield 0%%, got %d", p.PercentComplete)
	}
}

func TestGoals_NegativeValuesClamp(t *testing.T) {
	p := Goals([]Goal{{ID: "g1", Name: "Broken", Target: -100, Saved: -50}})[0]
	if !p.Target.IsZero() || !p.Saved.IsZero() {
		t.Errorf("negative raw values must clamp to zero, got target=%s saved=%s", p.Target, p.Saved)
	}
	if p.PercentComplete != 0 {
		t.Errorf("expected 0%%, got %d", p.PercentComplete)
	}
}

func TestGoals_PercentRounds(t *testing.T) {
	p := Goals([]Goal{{ID: "g1", Name: "Car", Target: 3, Saved: 1}})[0]
	if p.PercentComplete != 33 {
		t.Errorf("expected 33%%, got %d", p.PercentComplete)
	}
}
