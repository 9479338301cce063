package service

import (
	"strings"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalService handles savings-goal business logic
type GoalService struct {
	goalRepo       domain.GoalRepository
	eventPublisher websocket.EventPublisher
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *GoalService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *GoalService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateGoalInput holds the input for creating a goal
type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	TargetDate   *time.Time
}

// CreateGoal creates a new goal with validation
func (s *GoalService) CreateGoal(userID uuid.UUID, input CreateGoalInput) (*domain.Goal, error) {
	name, err := validateGoalName(input.Name)
	if err != nil {
		return nil, err
	}
	if input.TargetAmount.IsNegative() || input.SavedAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	goal := &domain.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: input.TargetAmount,
		SavedAmount:  input.SavedAmount,
		TargetDate:   input.TargetDate,
	}

	created, err := s.goalRepo.Create(goal)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.GoalCreated(created))

	return created, nil
}

// GetGoals retrieves all goals for a user
func (s *GoalService) GetGoals(userID uuid.UUID) ([]*domain.Goal, error) {
	return s.goalRepo.GetAllByUser(userID)
}

// GetGoalByID retrieves a goal by ID within a user's data
func (s *GoalService) GetGoalByID(userID uuid.UUID, id int32) (*domain.Goal, error) {
	return s.goalRepo.GetByID(userID, id)
}

// UpdateGoal updates a goal's details with validation
func (s *GoalService) UpdateGoal(userID uuid.UUID, id int32, input CreateGoalInput) (*domain.Goal, error) {
	name, err := validateGoalName(input.Name)
	if err != nil {
		return nil, err
	}
	if input.TargetAmount.IsNegative() || input.SavedAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	existing, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.TargetAmount = input.TargetAmount
	existing.SavedAmount = input.SavedAmount
	existing.TargetDate = input.TargetDate

	updated, err := s.goalRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.GoalUpdated(updated))

	return updated, nil
}

// UpdateSavedAmount sets only the saved amount of a goal
func (s *GoalService) UpdateSavedAmount(userID uuid.UUID, id int32, saved decimal.Decimal) (*domain.Goal, error) {
	if saved.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	updated, err := s.goalRepo.UpdateSavedAmount(userID, id, saved)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.GoalUpdated(updated))

	return updated, nil
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(userID uuid.UUID, id int32) error {
	if err := s.goalRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.GoalDeleted(DeletedPayload{ID: id}))

	return nil
}

func validateGoalName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", domain.ErrNameRequired
	}
	if len(trimmed) > domain.MaxNameLength {
		return "", domain.ErrNameTooLong
	}
	return trimmed, nil
}
