package report

import "github.com/shopspring/decimal"

// BudgetStatus classifies how much of a budget's limit has been used.
type BudgetStatus string

const (
	StatusOnTrack      BudgetStatus = "on_track"
	StatusCloseToLimit BudgetStatus = "close_to_limit"
	StatusOverBudget   BudgetStatus = "over_budget"
)

// BudgetUsage is the computed utilization of one budget for one month.
type BudgetUsage struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Limit       decimal.Decimal `json:"limit"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	UsedPercent int64           `json:"usedPercent"`
	Status      BudgetStatus    `json:"status"`
}

// BudgetReport scores every budget against the expense breakdown for the
// given month. A budget applies when it is evergreen or its month/year
// equal the period; non-applicable budgets score zero spend. Duplicate
// budgets for one category each see the full category spend. A zero limit
// yields zero percent, never a division error. Boundaries are inclusive
// toward the stricter status: exactly 80% is close-to-limit and exactly
// 100% is over-budget.
func BudgetReport(budgets []Budget, spend []CategoryTotal, period PeriodKey) []BudgetUsage {
	spentBy := make(map[string]decimal.Decimal, len(spend))
	for _, ct := range spend {
		spentBy[ct.Category] = ct.Total
	}

	result := make([]BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		limit := Amount(b.Limit)
		if limit.IsNegative() {
			limit = decimal.Zero
		}

		applicable := true
		if b.Month != nil || b.Year != nil {
			applicable = b.Month != nil && b.Year != nil &&
				*b.Month == int(period.Month) && *b.Year == period.Year
		}

		spent := decimal.Zero
		if applicable {
			spent = spentBy[categoryOf(b.Category)]
		}

		usedPercent := int64(0)
		if limit.IsPositive() {
			usedPercent = spent.Mul(decimal.NewFromInt(100)).Div(limit).Round(0).IntPart()
		}

		remaining := limit.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		// Status thresholds compare the exact spent/limit ratio via
		// cross-multiplication, so a ratio just under 0.8 stays on-track
		// even when the displayed percent rounds up to 80.
		status := StatusOnTrack
		if limit.IsPositive() {
			switch {
			case spent.GreaterThanOrEqual(limit):
				status = StatusOverBudget
			case spent.Mul(decimal.NewFromInt(5)).GreaterThanOrEqual(limit.Mul(decimal.NewFromInt(4))):
				status = StatusCloseToLimit
			}
		}

		result = append(result, BudgetUsage{
			ID:          b.ID,
			Category:    categoryOf(b.Category),
			Limit:       limit,
			Spent:       spent,
			Remaining:   remaining,
			UsedPercent: usedPercent,
			Status:      status,
		})
	}
	return result
}
