package service

import (
	"strings"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringService handles recurring-rule business logic
type RecurringService struct {
	recurringRepo  domain.RecurringRuleRepository
	eventPublisher websocket.EventPublisher
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo domain.RecurringRuleRepository) *RecurringService {
	return &RecurringService{recurringRepo: recurringRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *RecurringService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *RecurringService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateRecurringRuleInput holds the input for creating a recurring rule
type CreateRecurringRuleInput struct {
	Title          string
	Kind           domain.TransactionKind
	Category       string
	Amount         decimal.Decimal
	Frequency      domain.Frequency
	NextOccurrence time.Time
	Active         *bool
	Note           *string
}

// CreateRecurringRule creates a new recurring rule with validation
func (s *RecurringService) CreateRecurringRule(userID uuid.UUID, input CreateRecurringRuleInput) (*domain.RecurringRule, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrNameRequired
	}
	if len(title) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Kind != domain.TransactionKindIncome && input.Kind != domain.TransactionKindExpense {
		return nil, domain.ErrInvalidKind
	}
	if !domain.ValidFrequency(input.Frequency) {
		return nil, domain.ErrInvalidFrequency
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}

	note, err := normalizeNote(input.Note)
	if err != nil {
		return nil, err
	}

	// New rules start active unless explicitly created paused
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	rule := &domain.RecurringRule{
		UserID:         userID,
		Title:          title,
		Kind:           input.Kind,
		Category:       category,
		Amount:         input.Amount,
		Frequency:      input.Frequency,
		NextOccurrence: input.NextOccurrence,
		Active:         active,
		Note:           note,
	}

	created, err := s.recurringRepo.Create(rule)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.RecurringCreated(created))

	return created, nil
}

// GetRecurringRules retrieves a user's recurring rules
func (s *RecurringService) GetRecurringRules(userID uuid.UUID, activeOnly *bool) ([]*domain.RecurringRule, error) {
	return s.recurringRepo.GetAllByUser(userID, activeOnly)
}

// GetRecurringRuleByID retrieves a recurring rule by ID within a user's data
func (s *RecurringService) GetRecurringRuleByID(userID uuid.UUID, id int32) (*domain.RecurringRule, error) {
	return s.recurringRepo.GetByID(userID, id)
}

// UpdateRecurringRule updates a recurring rule's details with validation
func (s *RecurringService) UpdateRecurringRule(userID uuid.UUID, id int32, input CreateRecurringRuleInput) (*domain.RecurringRule, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrNameRequired
	}
	if len(title) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Kind != domain.TransactionKindIncome && input.Kind != domain.TransactionKindExpense {
		return nil, domain.ErrInvalidKind
	}
	if !domain.ValidFrequency(input.Frequency) {
		return nil, domain.ErrInvalidFrequency
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}

	note, err := normalizeNote(input.Note)
	if err != nil {
		return nil, err
	}

	existing, err := s.recurringRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Title = title
	existing.Kind = input.Kind
	existing.Category = category
	existing.Amount = input.Amount
	existing.Frequency = input.Frequency
	existing.NextOccurrence = input.NextOccurrence
	if input.Active != nil {
		existing.Active = *input.Active
	}
	existing.Note = note

	updated, err := s.recurringRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.RecurringUpdated(updated))

	return updated, nil
}

// ToggleActive flips the active state of a recurring rule
func (s *RecurringService) ToggleActive(userID uuid.UUID, id int32) (*domain.RecurringRule, error) {
	existing, err := s.recurringRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	existing.Active = !existing.Active

	updated, err := s.recurringRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.RecurringUpdated(updated))

	return updated, nil
}

// DeleteRecurringRule removes a recurring rule
func (s *RecurringService) DeleteRecurringRule(userID uuid.UUID, id int32) error {
	if err := s.recurringRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.RecurringDeleted(DeletedPayload{ID: id}))

	return nil
}
