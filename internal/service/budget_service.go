package service

import (
	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget-related business logic
type BudgetService struct {
	budgetRepo     domain.BudgetRepository
	eventPublisher websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateBudgetInput holds the input for creating a budget
type CreateBudgetInput struct {
	Category     string
	MonthlyLimit decimal.Decimal
	Month        *int
	Year         *int
}

// CreateBudget creates a new budget with validation. A budget is either
// evergreen (no month and no year) or pinned to an exact month and year.
func (s *BudgetService) CreateBudget(userID uuid.UUID, input CreateBudgetInput) (*domain.Budget, error) {
	category, month, year, err := validateBudgetFields(input.Category, input.MonthlyLimit, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	budget := &domain.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: input.MonthlyLimit,
		Month:        month,
		Year:         year,
	}

	created, err := s.budgetRepo.Create(budget)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.BudgetCreated(created))

	return created, nil
}

// GetBudgets retrieves all budgets for a user
func (s *BudgetService) GetBudgets(userID uuid.UUID) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAllByUser(userID)
}

// GetBudgetByID retrieves a budget by ID within a user's data
func (s *BudgetService) GetBudgetByID(userID uuid.UUID, id int32) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(userID, id)
}

// UpdateBudget updates a budget's details with validation
func (s *BudgetService) UpdateBudget(userID uuid.UUID, id int32, input CreateBudgetInput) (*domain.Budget, error) {
	category, month, year, err := validateBudgetFields(input.Category, input.MonthlyLimit, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgetRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Category = category
	existing.MonthlyLimit = input.MonthlyLimit
	existing.Month = month
	existing.Year = year

	updated, err := s.budgetRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.BudgetUpdated(updated))

	return updated, nil
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(userID uuid.UUID, id int32) error {
	if err := s.budgetRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.BudgetDeleted(DeletedPayload{ID: id}))

	return nil
}

func validateBudgetFields(rawCategory string, limit decimal.Decimal, month, year *int) (string, *int, *int, error) {
	category, err := normalizeCategory(rawCategory)
	if err != nil {
		return "", nil, nil, err
	}
	if limit.IsNegative() {
		return "", nil, nil, domain.ErrInvalidAmount
	}

	// A half-dated budget never applies anywhere; reject it at the door.
	if (month == nil) != (year == nil) {
		return "", nil, nil, domain.ErrInvalidInput
	}
	if month != nil && (*month < 1 || *month > 12) {
		return "", nil, nil, domain.ErrInvalidMonth
	}
	return category, month, year, nil
}
