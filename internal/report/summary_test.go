package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var march = PeriodKey{Year: 2024, Month: time.March}

func marchTransactions() []Transaction {
	return []Transaction{
		{ID: "t1", Kind: KindIncome, Amount: 5000, Date: TextDate("2024-03-01")},
		{ID: "t2", Kind: KindExpense, Amount: 1200, Category: "Rent", Date: TextDate("2024-03-02")},
		{ID: "t3", Kind: KindExpense, Amount: 300, Category: "Food", Date: TextDate("2024-03-15")},
	}
}

func TestSummarize(t *testing.T) {
	totals := Summarize(marchTransactions(), march)

	if !totals.Income.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected income 5000, got %s", totals.Income)
	}
	if !totals.Expense.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected expense 1500, got %s", totals.Expense)
	}
	if !totals.Net.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected net 3500, got %s", totals.Net)
	}
}

func TestSummarize_Empty(t *testing.T) {
	totals := Summarize(nil, march)
	if !totals.Income.IsZero() || !totals.Expense.IsZero() || !totals.Net.IsZero() {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestSummarize_OutsidePeriod(t *testing.T) {
	totals := Summarize(marchTransactions(), PeriodKey{Year: 2024, Month: time.April})
	if !totals.Income.IsZero() || !totals.Expense.IsZero() {
		t.Errorf("expected zero totals outside period, got %+v", totals)
	}
}

func TestSummarize_NegativeStoredAmount(t *testing.T) {
	positive := Summarize([]Transaction{
		{Kind: KindExpense, Amount: 250, Date: TextDate("2024-03-05")},
	}, march)
	negative := Summarize([]Transaction{
		{Kind: KindExpense, Amount: -250, Date: TextDate("2024-03-05")},
	}, march)

	if !positive.Expense.Equal(negative.Expense) {
		t.Errorf("negative stored amount must equal positive: %s vs %s", negative.Expense, positive.Expense)
	}
	if !negative.Expense.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected expense 250, got %s", negative.Expense)
	}
}

func TestSummarize_InvalidDatesExcluded(t *testing.T) {
	txs := append(marchTransactions(),
		Transaction{Kind: KindExpense, Amount: 999, Date: TextDate("garbage")},
		Transaction{Kind: KindExpense, Amount: 999, Date: nil},
	)

	totals := Summarize(txs, march)
	if !totals.Expense.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("invalid dates must contribute nothing, got expense %s", totals.Expense)
	}
}

func TestSummarize_MalformedAmount(t *testing.T) {
	totals := Summarize([]Transaction{
		{Kind: KindIncome, Amount: "not a number", Date: TextDate("2024-03-01")},
		{Kind: KindIncome, Amount: nil, Date: TextDate("2024-03-01")},
		{Kind: KindIncome, Amount: 100, Date: TextDate("2024-03-01")},
	}, march)

	if !totals.Income.Equal(decimal.NewFromInt(100)) {
		t.Errorf("malformed amounts must sum as zero, got %s", totals.Income)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	txs := marchTransactions()
	reversed := []Transaction{txs[2], txs[1], txs[0]}

	a := Summarize(txs, march)
	b := Summarize(reversed, march)
	if !a.Income.Equal(b.Income) || !a.Expense.Equal(b.Expense) || !a.Net.Equal(b.Net) {
		t.Errorf("totals must not depend on input order: %+v vs %+v", a, b)
	}
}
