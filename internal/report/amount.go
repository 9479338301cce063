package report

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Amount coerces a raw number-like value to a decimal. Anything that does
// not parse as a finite number normalizes to zero; NaN never reaches a sum.
func Amount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case float32:
		return Amount(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		return Amount(string(n))
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Magnitude returns the absolute value of the normalized amount. Stored
// sign is ignored everywhere: a transaction's direction comes from its
// kind, so a negative stored expense must not double-invert.
func Magnitude(v any) decimal.Decimal {
	return Amount(v).Abs()
}
