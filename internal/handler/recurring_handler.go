package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RecurringHandler handles recurring-rule HTTP requests
type RecurringHandler struct {
	recurringService *service.RecurringService
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService *service.RecurringService) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurringRequest represents the create recurring rule request body
type CreateRecurringRequest struct {
	Title          string  `json:"title"`
	Kind           string  `json:"kind"`
	Category       string  `json:"category"`
	Amount         string  `json:"amount"`
	Frequency      string  `json:"frequency"`
	NextOccurrence string  `json:"nextOccurrence"`
	Active         *bool   `json:"active,omitempty"`
	Note           *string `json:"note,omitempty"`
}

// RecurringResponse represents a recurring rule in API responses
type RecurringResponse struct {
	ID             int32   `json:"id"`
	Title          string  `json:"title"`
	Kind           string  `json:"kind"`
	Category       string  `json:"category"`
	Amount         string  `json:"amount"`
	Frequency      string  `json:"frequency"`
	NextOccurrence string  `json:"nextOccurrence"`
	Active         bool    `json:"active"`
	Note           *string `json:"note,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func toRecurringResponse(r *domain.RecurringRule) RecurringResponse {
	return RecurringResponse{
		ID:             r.ID,
		Title:          r.Title,
		Kind:           string(r.Kind),
		Category:       r.Category,
		Amount:         r.Amount.StringFixed(2),
		Frequency:      string(r.Frequency),
		NextOccurrence: r.NextOccurrence.Format(dateLayout),
		Active:         r.Active,
		Note:           r.Note,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}

func parseRecurringInput(c echo.Context, req CreateRecurringRequest) (service.CreateRecurringRuleInput, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return service.CreateRecurringRuleInput{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a valid decimal number"},
		})
	}

	if req.NextOccurrence == "" {
		return service.CreateRecurringRuleInput{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "nextOccurrence", Message: "Next occurrence is required"},
		})
	}
	nextOccurrence, err := time.Parse(dateLayout, req.NextOccurrence)
	if err != nil {
		return service.CreateRecurringRuleInput{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "nextOccurrence", Message: "Next occurrence must be in YYYY-MM-DD format"},
		})
	}

	return service.CreateRecurringRuleInput{
		Title:          req.Title,
		Kind:           domain.TransactionKind(req.Kind),
		Category:       req.Category,
		Amount:         amount,
		Frequency:      domain.Frequency(req.Frequency),
		NextOccurrence: nextOccurrence,
		Active:         req.Active,
		Note:           req.Note,
	}, nil
}

// CreateRecurringRule handles POST /recurring
func (h *RecurringHandler) CreateRecurringRule(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, handled := parseRecurringInput(c, req)
	if handled != nil {
		return handled
	}

	rule, err := h.recurringService.CreateRecurringRule(userID, input)
	if err != nil {
		if handled := handleRecurringValidationError(c, err); handled != nil {
			return handled
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create recurring rule")
		return NewInternalError(c, "Failed to create recurring rule")
	}

	log.Info().
		Str("user_id", userID.String()).
		Int32("rule_id", rule.ID).
		Str("frequency", string(rule.Frequency)).
		Msg("Recurring rule created")

	return c.JSON(http.StatusCreated, toRecurringResponse(rule))
}

// GetRecurringRules handles GET /recurring with an optional active filter
func (h *RecurringHandler) GetRecurringRules(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var activeOnly *bool
	if raw := c.QueryParam("active"); raw != "" {
		switch raw {
		case "true":
			v := true
			activeOnly = &v
		case "false":
			v := false
			activeOnly = &v
		default:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "active", Message: "Active must be true or false"},
			})
		}
	}

	rules, err := h.recurringService.GetRecurringRules(userID, activeOnly)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get recurring rules")
		return NewInternalError(c, "Failed to get recurring rules")
	}

	response := make([]RecurringResponse, 0, len(rules))
	for _, r := range rules {
		response = append(response, toRecurringResponse(r))
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateRecurringRule handles PUT /recurring/:id
func (h *RecurringHandler) UpdateRecurringRule(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, ok := parseIDParam(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring rule ID", nil)
	}

	var req CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, handled := parseRecurringInput(c, req)
	if handled != nil {
		return handled
	}

	rule, err := h.recurringService.UpdateRecurringRule(userID, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrRecurringRuleNotFound) {
			return NewNotFoundError(c, "Recurring rule not found")
		}
		if handled := handleRecurringValidationError(c, err); handled != nil {
			return handled
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int32("rule_id", id).Msg("Failed to update recurring rule")
		return NewInternalError(c, "Failed to update recurring rule")
	}

	return c.JSON(http.StatusOK, toRecurringResponse(rule))
}

// ToggleActive handles PATCH /recurring/:id/toggle-active
func (h *RecurringHandler) ToggleActive(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, ok := parseIDParam(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring rule ID", nil)
	}

	rule, err := h.recurringService.ToggleActive(userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecurringRuleNotFound) {
			return NewNotFoundError(c, "Recurring rule not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int32("rule_id", id).Msg("Failed to toggle recurring rule")
		return NewInternalError(c, "Failed to toggle recurring rule")
	}

	log.Info().
		Str("user_id", userID.String()).
		Int32("rule_id", id).
		Bool("active", rule.Active).
		Msg("Recurring rule toggled")

	return c.JSON(http.StatusOK, toRecurringResponse(rule))
}

// DeleteRecurringRule handles DELETE /recurring/:id
func (h *RecurringHandler) DeleteRecurringRule(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, ok := parseIDParam(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring rule ID", nil)
	}

	if err := h.recurringService.DeleteRecurringRule(userID, id); err != nil {
		if errors.Is(err, domain.ErrRecurringRuleNotFound) {
			return NewNotFoundError(c, "Recurring rule not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int32("rule_id", id).Msg("Failed to delete recurring rule")
		return NewInternalError(c, "Failed to delete recurring rule")
	}

	return c.NoContent(http.StatusNoContent)
}

func handleRecurringValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "title", Message: "Title is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "title", Message: "Title must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidKind):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "kind", Message: "Kind must be one of: income, expense"},
		})
	case errors.Is(err, domain.ErrInvalidFrequency):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "frequency", Message: "Frequency must be one of: daily, weekly, monthly, yearly"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be non-negative"},
		})
	case errors.Is(err, domain.ErrCategoryTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category must be 100 characters or less"},
		})
	case errors.Is(err, domain.ErrNoteTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "note", Message: "Note must be 1000 characters or less"},
		})
	}
	return nil
}
