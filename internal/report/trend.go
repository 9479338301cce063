package report

import "github.com/shopspring/decimal"

// TrendPoint is one month in a trend series.
type TrendPoint struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Trend builds a series covering the asOf month and the months-1 calendar
// months before it, oldest first. Every month produces exactly one point;
// months without transactions carry zeros. Input order is irrelevant.
func Trend(txs []Transaction, months int, asOf CalendarDate) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}

	periods := make([]PeriodKey, months)
	p := asOf.Period()
	for i := months - 1; i >= 0; i-- {
		periods[i] = p
		p = p.Prev()
	}

	series := make([]TrendPoint, months)
	for i, period := range periods {
		totals := Summarize(txs, period)
		series[i] = TrendPoint{
			Label:   period.ShortLabel(),
			Year:    period.Year,
			Month:   int(period.Month),
			Income:  totals.Income,
			Expense: totals.Expense,
		}
	}
	return series
}
