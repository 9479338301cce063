package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/centavo-app/centavo-backend/internal/report"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles aggregation and report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parsePeriod resolves the report month from year/month query parameters,
// defaulting to the current month when both are absent.
func parsePeriod(c echo.Context) (report.PeriodKey, error) {
	rawYear := c.QueryParam("year")
	rawMonth := c.QueryParam("month")

	if rawYear == "" && rawMonth == "" {
		now := time.Now().UTC()
		return report.PeriodKey{Year: now.Year(), Month: now.Month()}, nil
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		return report.PeriodKey{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "year", Message: "Year must be a positive integer"},
		})
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return report.PeriodKey{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "month", Message: "Month must be between 1 and 12"},
		})
	}

	return report.PeriodKey{Year: year, Month: time.Month(month)}, nil
}

// MonthlySummaryResponse represents a monthly summary in API responses
type MonthlySummaryResponse struct {
	Label   string `json:"label"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// GetSummary handles GET /reports/summary
func (h *ReportHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	period, handled := parsePeriod(c)
	if handled != nil {
		return handled
	}

	totals, err := h.reportService.MonthlySummary(userID, period)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute summary")
		return NewInternalError(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, MonthlySummaryResponse{
		Label:   period.Label(),
		Year:    period.Year,
		Month:   int(period.Month),
		Income:  totals.Income.StringFixed(2),
		Expense: totals.Expense.StringFixed(2),
		Net:     totals.Net.StringFixed(2),
	})
}

// GetFilteredSummary handles GET /reports/summary/filtered. Unlike the
// monthly summary it totals across every period the filters admit.
func (h *ReportHandler) GetFilteredSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	opts := report.FilterOptions{}
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "from", Message: "From must be in YYYY-MM-DD format"},
			})
		}
		from := report.DateOf(parsed)
		opts.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "to", Message: "To must be in YYYY-MM-DD format"},
			})
		}
		to := report.DateOf(parsed)
		opts.To = &to
	}
	if raw := c.QueryParam("kind"); raw != "" {
		if raw != string(report.KindIncome) && raw != string(report.KindExpense) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "kind", Message: "Kind must be one of: income, expense"},
			})
		}
		opts.Kind = report.Kind(raw)
	}
	opts.Category = c.QueryParam("category")

	totals, err := h.reportService.FilteredSummary(userID, opts)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute filtered summary")
		return NewInternalError(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"income":  totals.Income.StringFixed(2),
		"expense": totals.Expense.StringFixed(2),
		"net":     totals.Net.StringFixed(2),
	})
}

// GetBreakdown handles GET /reports/breakdown
func (h *ReportHandler) GetBreakdown(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	period, handled := parsePeriod(c)
	if handled != nil {
		return handled
	}

	// Expense breakdown is the default view
	kind := report.KindExpense
	if raw := c.QueryParam("kind"); raw != "" {
		if raw != string(report.KindIncome) && raw != string(report.KindExpense) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "kind", Message: "Kind must be one of: income, expense"},
			})
		}
		kind = report.Kind(raw)
	}

	breakdown, err := h.reportService.CategoryBreakdown(userID, period, kind)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute breakdown")
		return NewInternalError(c, "Failed to compute breakdown")
	}

	return c.JSON(http.StatusOK, breakdown)
}

// GetTrend handles GET /reports/trend
func (h *ReportHandler) GetTrend(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	months := 6
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 24 {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "months", Message: "Months must be between 1 and 24"},
			})
		}
		months = parsed
	}

	trend, err := h.reportService.Trend(userID, months, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute trend")
		return NewInternalError(c, "Failed to compute trend")
	}

	return c.JSON(http.StatusOK, trend)
}

// GetBudgetReport handles GET /reports/budgets
func (h *ReportHandler) GetBudgetReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	period, handled := parsePeriod(c)
	if handled != nil {
		return handled
	}

	usage, err := h.reportService.BudgetReport(userID, period)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute budget report")
		return NewInternalError(c, "Failed to compute budget report")
	}

	return c.JSON(http.StatusOK, usage)
}

// GetCalendar handles GET /reports/calendar
func (h *ReportHandler) GetCalendar(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	period, handled := parsePeriod(c)
	if handled != nil {
		return handled
	}

	calendar, err := h.reportService.Calendar(userID, period)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute calendar")
		return NewInternalError(c, "Failed to compute calendar")
	}

	return c.JSON(http.StatusOK, calendar)
}

// GetGoalsProgress handles GET /reports/goals
func (h *ReportHandler) GetGoalsProgress(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	progress, err := h.reportService.GoalsProgress(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute goal progress")
		return NewInternalError(c, "Failed to compute goal progress")
	}

	return c.JSON(http.StatusOK, progress)
}

// GetCategories handles GET /reports/categories
func (h *ReportHandler) GetCategories(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	categories, err := h.reportService.Categories(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list categories")
		return NewInternalError(c, "Failed to list categories")
	}

	return c.JSON(http.StatusOK, categories)
}

// ExportCSV handles GET /reports/export and streams a CSV download of the
// user's transactions, honoring the same filters as the transaction list.
func (h *ReportHandler) ExportCSV(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	csv, err := h.reportService.ExportCSV(userID, filters)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to export transactions")
		return NewInternalError(c, "Failed to export transactions")
	}

	filename := "transactions-" + time.Now().UTC().Format(dateLayout) + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, "text/csv", []byte(csv))
}
