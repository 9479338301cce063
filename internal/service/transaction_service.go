package service

import (
	"strings"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeletedPayload is the WebSocket payload for entity deletion events
type DeletedPayload struct {
	ID int32 `json:"id"`
}

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Kind       domain.TransactionKind
	Amount     decimal.Decimal
	Category   string
	OccurredAt *time.Time
	Note       *string
}

// CreateTransaction creates a new transaction with validation
func (s *TransactionService) CreateTransaction(userID uuid.UUID, input CreateTransactionInput) (*domain.Transaction, error) {
	if input.Kind != domain.TransactionKindIncome && input.Kind != domain.TransactionKindExpense {
		return nil, domain.ErrInvalidKind
	}

	// Amounts are stored as non-negative magnitudes; the kind carries the sign.
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

	// Default occurred_at to today if not provided
	occurredAt := time.Now().UTC().Truncate(24 * time.Hour)
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	transaction := &domain.Transaction{
		UserID:     userID,
		Kind:       input.Kind,
		Amount:     input.Amount,
		Category:   category,
		OccurredAt: occurredAt,
		Note:       note,
	}

	created, err := s.transactionRepo.Create(transaction)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.TransactionCreated(created))

	return created, nil
}

// GetTransactions retrieves a user's transactions with optional filters
func (s *TransactionService) GetTransactions(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAllByUser(userID, filters)
}

// GetTransactionByID retrieves a transaction by ID within a user's data
func (s *TransactionService) GetTransactionByID(userID uuid.UUID, id int32) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(userID, id)
}

// UpdateTransactionInput holds the input for updating a transaction
type UpdateTransactionInput struct {
	Kind       domain.TransactionKind
	Amount     decimal.Decimal
	Category   string
	OccurredAt time.Time
	Note       *string
}

// UpdateTransaction updates a transaction's details with validation
func (s *TransactionService) UpdateTransaction(userID uuid.UUID, id int32, input UpdateTransactionInput) (*domain.Transaction, error) {
	if input.Kind != domain.TransactionKindIncome && input.Kind != domain.TransactionKindExpense {
		return nil, domain.ErrInvalidKind
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

	existing, err := s.transactionRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Kind = input.Kind
	existing.Amount = input.Amount
	existing.Category = category
	existing.OccurredAt = input.OccurredAt
	existing.Note = note

	updated, err := s.transactionRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.TransactionUpdated(updated))

	return updated, nil
}

// DeleteTransaction removes a transaction
func (s *TransactionService) DeleteTransaction(userID uuid.UUID, id int32) error {
	if err := s.transactionRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.TransactionDeleted(DeletedPayload{ID: id}))

	return nil
}

// normalizeCategory trims the category and falls back to the shared default
// when empty. An over-long category is rejected rather than truncated.
func normalizeCategory(category string) (string, error) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return domain.FallbackCategory, nil
	}
	if len(trimmed) > domain.MaxCategoryLength {
		return "", domain.ErrCategoryTooLong
	}
	return trimmed, nil
}

func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > domain.MaxNoteLength {
		return nil, domain.ErrNoteTooLong
	}
	return &trimmed, nil
}
