package service

import (
	"strconv"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/report"
	"github.com/google/uuid"
)

// ReportService derives aggregated views from a user's stored data. All
// aggregation math lives in the report package; this service loads the
// snapshot and adapts domain entities into report records.
type ReportService struct {
	transactionRepo domain.TransactionRepository
	budgetRepo      domain.BudgetRepository
	goalRepo        domain.GoalRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository, budgetRepo domain.BudgetRepository, goalRepo domain.GoalRepository) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
	}
}

// MonthlySummary returns income, expense and net totals for one month
func (s *ReportService) MonthlySummary(userID uuid.UUID, period report.PeriodKey) (report.Totals, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return report.Totals{}, err
	}
	return report.Summarize(txs, period), nil
}

// CategoryBreakdown returns per-category totals for one month and kind
func (s *ReportService) CategoryBreakdown(userID uuid.UUID, period report.PeriodKey, kind report.Kind) ([]report.CategoryTotal, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.Breakdown(txs, period, kind), nil
}

// Trend returns a chronological series of monthly totals ending at asOf
func (s *ReportService) Trend(userID uuid.UUID, months int, asOf time.Time) ([]report.TrendPoint, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.Trend(txs, months, report.DateOf(asOf)), nil
}

// BudgetReport scores every applicable budget against one month's spending
func (s *ReportService) BudgetReport(userID uuid.UUID, period report.PeriodKey) ([]report.BudgetUsage, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	spend := report.Breakdown(txs, period, report.KindExpense)
	return report.BudgetReport(adaptBudgets(budgets), spend, period), nil
}

// Calendar returns the month's expense heatmap grid
func (s *ReportService) Calendar(userID uuid.UUID, period report.PeriodKey) (report.CalendarMonth, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return report.CalendarMonth{}, err
	}
	return report.Calendar(txs, period), nil
}

// GoalsProgress returns derived progress for every goal
func (s *ReportService) GoalsProgress(userID uuid.UUID) ([]report.GoalProgress, error) {
	goals, err := s.goalRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}
	return report.Goals(adaptGoals(goals)), nil
}

// ExportCSV renders the user's transactions, optionally narrowed by
// filters, as a CSV document
func (s *ReportService) ExportCSV(userID uuid.UUID, filters *domain.TransactionFilters) (string, error) {
	records, err := s.transactionRepo.GetAllByUser(userID, filters)
	if err != nil {
		return "", err
	}
	return report.CSV(adaptTransactions(records)), nil
}

// FilteredSummary totals a filtered slice of the user's history for the
// report page's summary cards
func (s *ReportService) FilteredSummary(userID uuid.UUID, opts report.FilterOptions) (report.Totals, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return report.Totals{}, err
	}
	return report.SummarizeAll(report.Filter(txs, opts)), nil
}

// Categories lists the distinct categories in the user's history
func (s *ReportService) Categories(userID uuid.UUID) ([]string, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.Categories(txs), nil
}

func (s *ReportService) loadTransactions(userID uuid.UUID) ([]report.Transaction, error) {
	records, err := s.transactionRepo.GetAllByUser(userID, nil)
	if err != nil {
		return nil, err
	}
	return adaptTransactions(records), nil
}

// Adapters from persisted entities to the report package's loose records.

func adaptTransactions(records []*domain.Transaction) []report.Transaction {
	txs := make([]report.Transaction, 0, len(records))
	for _, t := range records {
		note := ""
		if t.Note != nil {
			note = *t.Note
		}
		txs = append(txs, report.Transaction{
			ID:       strconv.FormatInt(int64(t.ID), 10),
			Kind:     report.Kind(t.Kind),
			Amount:   t.Amount,
			Category: t.Category,
			Date:     report.NativeDate(t.OccurredAt),
			Note:     note,
		})
	}
	return txs
}

func adaptBudgets(records []*domain.Budget) []report.Budget {
	budgets := make([]report.Budget, 0, len(records))
	for _, b := range records {
		budgets = append(budgets, report.Budget{
			ID:       strconv.FormatInt(int64(b.ID), 10),
			Category: b.Category,
			Limit:    b.MonthlyLimit,
			Month:    b.Month,
			Year:     b.Year,
		})
	}
	return budgets
}

func adaptGoals(records []*domain.Goal) []report.Goal {
	goals := make([]report.Goal, 0, len(records))
	for _, g := range records {
		goals = append(goals, report.Goal{
			ID:     strconv.FormatInt(int64(g.ID), 10),
			Name:   g.Name,
			Target: g.TargetAmount,
			Saved:  g.SavedAmount,
		})
	}
	return goals
}
