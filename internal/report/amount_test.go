package report

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"decimal", decimal.NewFromInt(1200), "1200"},
		{"float", 12.5, "12.5"},
		{"int", 300, "300"},
		{"int64", int64(-45), "-45"},
		{"string", "99.99", "99.99"},
		{"json number", json.Number("42"), "42"},
		{"bad string", "twelve", "0"},
		{"nan", math.NaN(), "0"},
		{"positive inf", math.Inf(1), "0"},
		{"bool", true, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Amount(tc.in)
			want, _ := decimal.NewFromString(tc.want)
			if !got.Equal(want) {
				t.Errorf("Amount(%v) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	if !Magnitude(-1200).Equal(decimal.NewFromInt(1200)) {
		t.Error("expected negative stored amount to normalize to its magnitude")
	}
	if !Magnitude("−bad−").Equal(decimal.Zero) {
		t.Error("expected unparsable amount to normalize to zero")
	}
}
