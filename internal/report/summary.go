package report

import "github.com/shopspring/decimal"

// Totals holds income, expense and net magnitudes for one month.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// Summarize sums the transactions attributed to the given month.
// Records with unresolvable dates or dates outside the period contribute
// nothing; amounts are summed as magnitudes regardless of stored sign.
func Summarize(txs []Transaction, period PeriodKey) Totals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range txs {
		date, ok := Resolve(tx.Date)
		if !ok || date.Period() != period {
			continue
		}
		amt := Magnitude(tx.Amount)
		if tx.Kind == KindIncome {
			income = income.Add(amt)
		} else {
			expense = expense.Add(amt)
		}
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
