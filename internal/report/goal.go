package report

import "github.com/shopspring/decimal"

// GoalProgress is the derived view of one savings goal.
type GoalProgress struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Target          decimal.Decimal `json:"target"`
	Saved           decimal.Decimal `json:"saved"`
	Remaining       decimal.Decimal `json:"remaining"`
	PercentComplete int64           `json:"percentComplete"`
}

// Goals derives progress for each goal. Negative raw values clamp to zero,
// a zero target yields zero percent, and overshooting the target clamps to
// 100% with zero remaining.
func Goals(goals []Goal) []GoalProgress {
	result := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		target := Amount(g.Target)
		if target.IsNegative() {
			target = decimal.Zero
		}
		saved := Amount(g.Saved)
		if saved.IsNegative() {
			saved = decimal.Zero
		}

		percent := int64(0)
		if target.IsPositive() {
			percent = saved.Mul(decimal.NewFromInt(100)).Div(target).Round(0).IntPart()
			if percent > 100 {
				percent = 100
			}
		}

		remaining := target.Sub(saved)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		result = append(result, GoalProgress{
			ID:              g.ID,
			Name:            g.Name,
			Target:          target,
			Saved:           saved,
			Remaining:       remaining,
			PercentComplete: percent,
		})
	}
	return result
}
