package report

import "github.com/shopspring/decimal"

// CalendarCell is one cell of the month grid. Day 0 marks a blank padding
// cell outside the month.
type CalendarCell struct {
	Day   int             `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// CalendarMonth is a Sunday-aligned expense heatmap for one month.
type CalendarMonth struct {
	Label      string          `json:"label"`
	Cells      []CalendarCell  `json:"cells"`
	MaxExpense decimal.Decimal `json:"maxExpense"`
}

// Weeks slices the grid into rows of seven cells.
func (m CalendarMonth) Weeks() [][]CalendarCell {
	weeks := make([][]CalendarCell, 0, len(m.Cells)/7)
	for i := 0; i < len(m.Cells); i += 7 {
		weeks = append(weeks, m.Cells[i:i+7])
	}
	return weeks
}

// Calendar buckets one month's expenses by day. The grid starts on Sunday:
// leading blanks cover the weekdays before day 1 and trailing blanks pad
// the final row, so the cell count is always a multiple of seven. The sum
// of all day cells equals the month's Summarize expense total, and
// MaxExpense is the largest single-day total for intensity scaling.
func Calendar(txs []Transaction, period PeriodKey) CalendarMonth {
	days := period.Days()
	byDay := make([]decimal.Decimal, days+1)

	for _, tx := range txs {
		if tx.Kind != KindExpense {
			continue
		}
		date, ok := Resolve(tx.Date)
		if !ok || date.Period() != period {
			continue
		}
		byDay[date.Day] = byDay[date.Day].Add(Magnitude(tx.Amount))
	}

	firstWeekday := int(CalendarDate{Year: period.Year, Month: period.Month, Day: 1}.Time().Weekday())

	cells := make([]CalendarCell, 0, firstWeekday+days+6)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, CalendarCell{})
	}

	maxExpense := decimal.Zero
	for day := 1; day <= days; day++ {
		total := byDay[day]
		if total.GreaterThan(maxExpense) {
			maxExpense = total
		}
		cells = append(cells, CalendarCell{Day: day, Total: total})
	}

	for len(cells)%7 != 0 {
		cells = append(cells, CalendarCell{})
	}

	return CalendarMonth{
		Label:      period.Label(),
		Cells:      cells,
		MaxExpense: maxExpense,
	}
}
