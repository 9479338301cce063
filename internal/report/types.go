// Package report is the aggregation engine behind the dashboard and report
// endpoints. Every function is a pure computation over an already-loaded
// snapshot of records: no I/O, no clock reads (callers pass the reference
// date explicitly), and a fresh full recomputation on every call.
//
// Inputs are deliberately loose: snapshot records carry amounts as any and
// dates as RawDate, and the engine normalizes defensively instead of
// trusting the store. Malformed amounts become zero, malformed dates drop
// the record out of period bucketing, and a missing category falls back to
// "Other". The engine never returns an error.
package report

// Kind discriminates income from expense records.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// FallbackCategory is substituted for an absent category label.
const FallbackCategory = "Other"

// Transaction is one snapshot record. Amount may be any number-like value
// (decimal, float, int, numeric string); Date may be any RawDate variant.
type Transaction struct {
	ID       string
	Kind     Kind
	Amount   any
	Category string
	Date     RawDate
	Note     string
}

// Budget is one snapshot budget record. A nil Month and Year means the
// budget is evergreen and applies to every period.
type Budget struct {
	ID       string
	Category string
	Limit    any
	Month    *int
	Year     *int
}

// Goal is one snapshot savings-goal record.
type Goal struct {
	ID     string
	Name   string
	Target any
	Saved  any
}

// categoryOf applies the fallback label for records without a category.
func categoryOf(raw string) string {
	if raw == "" {
		return FallbackCategory
	}
	return raw
}
