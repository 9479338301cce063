package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Goal struct {
	ID           int32           `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	TargetDate   *time.Time      `json:"targetDate,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type GoalRepository interface {
	Create(goal *Goal) (*Goal, error)
	GetByID(userID uuid.UUID, id int32) (*Goal, error)
	GetAllByUser(userID uuid.UUID) ([]*Goal, error)
	Update(goal *Goal) (*Goal, error)
	UpdateSavedAmount(userID uuid.UUID, id int32, saved decimal.Decimal) (*Goal, error)
	Delete(userID uuid.UUID, id int32) error
}
