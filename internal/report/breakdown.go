package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one category's summed magnitude for a period.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Breakdown groups one month's transactions of the given kind by category.
// Missing categories group under the fallback label. The result is ordered
// by total descending, then category ascending, so output is deterministic
// regardless of input order; the grand total always equals the matching
// Summarize figure for the same period and kind.
func Breakdown(txs []Transaction, period PeriodKey, kind Kind) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}
		date, ok := Resolve(tx.Date)
		if !ok || date.Period() != period {
			continue
		}
		cat := categoryOf(tx.Category)
		byCategory[cat] = byCategory[cat].Add(Magnitude(tx.Amount))
	}

	result := make([]CategoryTotal, 0, len(byCategory))
	for cat, total := range byCategory {
		result = append(result, CategoryTotal{Category: cat, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})

	return result
}
