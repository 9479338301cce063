package report

import (
	"testing"
	"time"
)

func TestResolveNativeDate(t *testing.T) {
	d, ok := Resolve(NativeDate(time.Date(2024, time.March, 15, 22, 45, 0, 0, time.UTC)))
	if !ok {
		t.Fatal("expected native timestamp to resolve")
	}
	if d != (CalendarDate{Year: 2024, Month: time.March, Day: 15}) {
		t.Errorf("unexpected date: %+v", d)
	}
}

func TestResolveNativeDate_Zero(t *testing.T) {
	if _, ok := Resolve(NativeDate(time.Time{})); ok {
		t.Error("expected zero timestamp to be invalid")
	}
}

func TestResolveTextDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want CalendarDate
		ok   bool
	}{
		{"iso date", "2024-03-02", CalendarDate{2024, time.March, 2}, true},
		{"rfc3339", "2024-03-02T10:30:00Z", CalendarDate{2024, time.March, 2}, true},
		{"rfc3339 nano", "2024-03-02T10:30:00.123456789Z", CalendarDate{2024, time.March, 2}, true},
		{"no zone", "2024-03-02T10:30:00", CalendarDate{2024, time.March, 2}, true},
		{"garbage", "not-a-date", CalendarDate{}, false},
		{"empty", "", CalendarDate{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Resolve(TextDate(tc.in))
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveEpochDate(t *testing.T) {
	// 2024-03-02T00:00:00Z in Unix milliseconds
	d, ok := Resolve(EpochDate(1709337600000))
	if !ok {
		t.Fatal("expected epoch to resolve")
	}
	if d != (CalendarDate{Year: 2024, Month: time.March, Day: 2}) {
		t.Errorf("unexpected date: %+v", d)
	}

	if _, ok := Resolve(EpochDate(0)); ok {
		t.Error("expected zero epoch to be invalid")
	}
}

func TestResolveNil(t *testing.T) {
	if _, ok := Resolve(nil); ok {
		t.Error("expected nil raw date to be invalid")
	}
}

func TestPeriodKeyPrev(t *testing.T) {
	p := PeriodKey{Year: 2024, Month: time.January}.Prev()
	if p != (PeriodKey{Year: 2023, Month: time.December}) {
		t.Errorf("expected December 2023, got %+v", p)
	}

	p = PeriodKey{Year: 2024, Month: time.March}.Prev()
	if p != (PeriodKey{Year: 2024, Month: time.February}) {
		t.Errorf("expected February 2024, got %+v", p)
	}
}

func TestPeriodKeyDays(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tc := range cases {
		if got := (PeriodKey{Year: tc.year, Month: tc.month}).Days(); got != tc.want {
			t.Errorf("%d-%d: expected %d days, got %d", tc.year, tc.month, tc.want, got)
		}
	}
}

func TestPeriodKeyLabels(t *testing.T) {
	p := PeriodKey{Year: 2024, Month: time.March}
	if p.ShortLabel() != "Mar" {
		t.Errorf("expected 'Mar', got %q", p.ShortLabel())
	}
	if p.Label() != "March 2024" {
		t.Errorf("expected 'March 2024', got %q", p.Label())
	}
}

func TestCalendarDateOrdering(t *testing.T) {
	a := CalendarDate{2024, time.March, 2}
	b := CalendarDate{2024, time.March, 15}
	if !a.Before(b) || b.Before(a) {
		t.Error("expected March 2 before March 15")
	}
	if !b.After(a) {
		t.Error("expected March 15 after March 2")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date must not order before or after itself")
	}
}
