package service

import (
	"errors"
	"testing"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCreateGoal_Success(t *testing.T) {
	goalRepo := testutil.NewMockGoalRepository()
	goalService := NewGoalService(goalRepo)

	userID := uuid.New()
	goal, err := goalService.CreateGoal(userID, CreateGoalInput{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(10000),
		SavedAmount:  decimal.NewFromInt(2500),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if goal.Name != "Emergency fund" {
		t.Errorf("Expected name 'Emergency fund', got %s", goal.Name)
	}
	if goal.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, goal.UserID)
	}
}

func TestCreateGoal_EmptyName(t *testing.T) {
	goalService := NewGoalService(testutil.NewMockGoalRepository())

	_, err := goalService.CreateGoal(uuid.New(), CreateGoalInput{
		Name:         "   ",
		TargetAmount: decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateGoal_NegativeAmounts(t *testing.T) {
	goalService := NewGoalService(testutil.NewMockGoalRepository())

	_, err := goalService.CreateGoal(uuid.New(), CreateGoalInput{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(-500),
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestUpdateSavedAmount(t *testing.T) {
	goalRepo := testutil.NewMockGoalRepository()
	goalService := NewGoalService(goalRepo)

	userID := uuid.New()
	goalRepo.AddGoal(&domain.Goal{
		ID:           1,
		UserID:       userID,
		Name:         "Car",
		TargetAmount: decimal.NewFromInt(20000),
		SavedAmount:  decimal.NewFromInt(1000),
	})

	updated, err := goalService.UpdateSavedAmount(userID, 1, decimal.NewFromInt(1500))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !updated.SavedAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Expected saved 1500, got %s", updated.SavedAmount)
	}

	if _, err := goalService.UpdateSavedAmount(userID, 1, decimal.NewFromInt(-5)); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount for negative saved, got %v", err)
	}
}

func TestGoalScopedToUser(t *testing.T) {
	goalRepo := testutil.NewMockGoalRepository()
	goalService := NewGoalService(goalRepo)

	owner := uuid.New()
	goalRepo.AddGoal(&domain.Goal{
		ID:           1,
		UserID:       owner,
		Name:         "Car",
		TargetAmount: decimal.NewFromInt(20000),
	})

	if _, err := goalService.GetGoalByID(uuid.New(), 1); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Errorf("Expected ErrGoalNotFound for another user, got %v", err)
	}
}
