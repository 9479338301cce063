package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ValidFrequency reports whether f is one of the supported frequencies.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringRule is a template for a transaction the user enters regularly.
// Rules are never materialized into transactions by the server; they exist
// so the client can prompt the user when NextOccurrence comes due.
type RecurringRule struct {
	ID             int32           `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Title          string          `json:"title"`
	Kind           TransactionKind `json:"kind"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Frequency      Frequency       `json:"frequency"`
	NextOccurrence time.Time       `json:"nextOccurrence"`
	Active         bool            `json:"active"`
	Note           *string         `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type RecurringRuleRepository interface {
	Create(rule *RecurringRule) (*RecurringRule, error)
	GetByID(userID uuid.UUID, id int32) (*RecurringRule, error)
	GetAllByUser(userID uuid.UUID, activeOnly *bool) ([]*RecurringRule, error)
	Update(rule *RecurringRule) (*RecurringRule, error)
	Delete(userID uuid.UUID, id int32) error
}
