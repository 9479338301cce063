package report

import "sort"

// FilterOptions narrows a snapshot before aggregation, mirroring the
// report page's filter bar. Zero values mean "no restriction"; From and To
// are inclusive calendar-date bounds (To covers its whole day).
type FilterOptions struct {
	From     *CalendarDate
	To       *CalendarDate
	Kind     Kind
	Category string
}

// Filter returns the transactions matching the options. Records whose date
// cannot be resolved are always dropped, so downstream aggregations over a
// filtered list see only bucketable records.
func Filter(txs []Transaction, opts FilterOptions) []Transaction {
	result := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		date, ok := Resolve(tx.Date)
		if !ok {
			continue
		}
		if opts.Kind != "" && tx.Kind != opts.Kind {
			continue
		}
		if opts.Category != "" && tx.Category != opts.Category {
			continue
		}
		if opts.From != nil && date.Before(*opts.From) {
			continue
		}
		if opts.To != nil && date.After(*opts.To) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// SummarizeAll totals an entire (typically pre-filtered) list without
// period bucketing, for the report page's summary cards. Records with
// invalid dates still count here; date placement only matters for
// period-bucketed views.
func SummarizeAll(txs []Transaction) Totals {
	totals := Totals{}
	for _, tx := range txs {
		amt := Magnitude(tx.Amount)
		if tx.Kind == KindIncome {
			totals.Income = totals.Income.Add(amt)
		} else {
			totals.Expense = totals.Expense.Add(amt)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}

// Categories lists the distinct categories present, sorted, for filter
// dropdowns. Empty categories are skipped (they render as the fallback
// label elsewhere but are not a selectable filter value).
func Categories(txs []Transaction) []string {
	seen := make(map[string]struct{})
	for _, tx := range txs {
		if tx.Category != "" {
			seen[tx.Category] = struct{}{}
		}
	}
	result := make([]string, 0, len(seen))
	for cat := range seen {
		result = append(result, cat)
	}
	sort.Strings(result)
	return result
}
