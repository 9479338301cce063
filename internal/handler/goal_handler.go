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

// GoalHandler handles savings-goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the create goal request body
type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount string  `json:"targetAmount"`
	SavedAmount  *string `json:"savedAmount,omitempty"`
	TargetDate   *string `json:"targetDate,omitempty"`
}

// UpdateSavedAmountRequest represents the saved amount patch body
type UpdateSavedAmountRequest struct {
	SavedAmount string `json:"savedAmount"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	TargetAmount string  `json:"targetAmount"`
	SavedAmount  string  `json:"savedAmount"`
	TargetDate   *string `json:"targetDate,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func toGoalResponse(g *domain.Goal) GoalResponse {
	var targetDate *string
	if g.TargetDate != nil {
		formatted := g.TargetDate.Format(dateLayout)
		targetDate = &formatted
	}
	return GoalResponse{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount.StringFixed(2),
		SavedAmount:  g.SavedAmount.StringFixed(2),
		TargetDate:   targetDate,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
}

// parseGoalInput converts a request body into a service input
func parseGoalInput(c echo.Context, req CreateGoalRequest) (service.CreateGoalInput, error) {
	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return service.CreateGoalInput{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "targetAmount", Message: "Target amount must be a valid decimal number"},
		})
	}

	saved := decimal.Zero
	if req.SavedAmount != nil {
		saved, err = decimal.NewFromString(*req.SavedAmount)
		if err != nil {
			return service.CreateGoalInput{}, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "savedAmount", Message: "Saved amount must be a valid decimal number"},
			})
		}
	}

	var targetDate *time.Time
	if req.TargetDate != nil && *req.TargetDate != "" {
		parsed, err := time.Parse(dateLayout, *req.TargetDate)
		if err != nil {
			return service.CreateGoalInput{}, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "targetDate", Message: "Target date must be in YYYY-MM-DD format"},
			})
		}
		targetDate = &parsed
	}

	return service.CreateGoalInput{
		Name:         req.Name,
		TargetAmount: target,
		SavedAmount:  saved,
		TargetDate:   targetDate,
	}, nil
}

// CreateGoal handles POST /goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, handled := parseGoalInput(c, req)
	if handled != nil {
		return handled
	}

	goal, err := h.goalService.CreateGoal(userID, input)
	if err != nil {
		if handled := handleGoalValidationError(c, err); handled != nil {
			return handled
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create goal")
		return NewInternalError(c, "Failed to create goal")
	}

	log.Info().
		Str("user_id", userID.String()).
		Int32("goal_id", goal.ID).
		Str("name", goal.Name).
		Msg("Goal created")

	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// GetGoals handles GET /goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	goals, err := h.goalService.GetGoals(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get goals")
		return NewInternalError(c, "Failed to get goals")
	}

	response := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		response = append(response, toGoalResponse(g))
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateGoal handles PUT /goals/:id
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, ok := parseIDParam(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, handled := parseGoalInput(c, req)
	if handled != nil {
		return handled
	}

	goal, err := h.goalService.UpdateGoal(userID, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		if handled := handleGoalValidationError(c, err); handled != nil {
			return handled
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int32("goal_id", id).Msg("Failed to update goal")
		return NewInternalError(c, "Failed to update goal")
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// UpdateSavedAmount handles PATCH /goals/:id/saved
func (h *GoalHandler) UpdateSavedAmount(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, ok := parseIDParam(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	var req UpdateSavedAmountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	saved, err := decimal.NewFromString(req.SavedAmount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "savedAmount", Message: "Saved amount must be a valid decimal number"},
		})
	}

	goal, err := h.goalService.UpdateSavedAmount(userID, id, saved)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "savedAmount", Message: "Saved amount must be non-negative"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int32("goal_id", id).Msg("Failed to update saved amount")
		return NewInternalError(c, "Failed to update saved amount")
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, ok := parseIDParam(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	if err := h.goalService.DeleteGoal(userID, id); err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int32("goal_id", id).Msg("Failed to delete goal")
		return NewInternalError(c, "Failed to delete goal")
	}

	log.Info().
		Str("user_id", userID.String()).
		Int32("goal_id", id).
		Msg("Goal deleted")

	return c.NoContent(http.StatusNoContent)
}

func handleGoalValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "targetAmount", Message: "Amounts must be non-negative"},
		})
	}
	return nil
}
