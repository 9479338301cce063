package service

import (
	"errors"
	"testing"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func TestCreateBudget_Evergreen(t *testing.T) {
	budgetRepo := testutil.NewMockBudgetRepository()
	budgetService := NewBudgetService(budgetRepo)

	userID := uuid.New()
	budget, err := budgetService.CreateBudget(userID, CreateBudgetInput{
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(400),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !budget.IsEvergreen() {
		t.Error("Expected budget without month/year to be evergreen")
	}
	if budget.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, budget.UserID)
	}
}

func TestCreateBudget_Dated(t *testing.T) {
	budgetService := NewBudgetService(testutil.NewMockBudgetRepository())

	budget, err := budgetService.CreateBudget(uuid.New(), CreateBudgetInput{
		Category:     "Travel",
		MonthlyLimit: decimal.NewFromInt(1000),
		Month:        intPtr(7),
		Year:         intPtr(2025),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if budget.Month == nil || *budget.Month != 7 || budget.Year == nil || *budget.Year != 2025 {
		t.Errorf("Expected July 2025 budget, got %v/%v", budget.Month, budget.Year)
	}
}

func TestCreateBudget_HalfDatedRejected(t *testing.T) {
	budgetService := NewBudgetService(testutil.NewMockBudgetRepository())

	_, err := budgetService.CreateBudget(uuid.New(), CreateBudgetInput{
		Category:     "Travel",
		MonthlyLimit: decimal.NewFromInt(1000),
		Month:        intPtr(7),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for month without year, got %v", err)
	}
}

func TestCreateBudget_InvalidMonth(t *testing.T) {
	budgetService := NewBudgetService(testutil.NewMockBudgetRepository())

	_, err := budgetService.CreateBudget(uuid.New(), CreateBudgetInput{
		Category:     "Travel",
		MonthlyLimit: decimal.NewFromInt(1000),
		Month:        intPtr(13),
		Year:         intPtr(2025),
	})
	if !errors.Is(err, domain.ErrInvalidMonth) {
		t.Errorf("Expected ErrInvalidMonth, got %v", err)
	}
}

func TestCreateBudget_NegativeLimit(t *testing.T) {
	budgetService := NewBudgetService(testutil.NewMockBudgetRepository())

	_, err := budgetService.CreateBudget(uuid.New(), CreateBudgetInput{
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(-1),
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestUpdateBudget_Success(t *testing.T) {
	budgetRepo := testutil.NewMockBudgetRepository()
	budgetService := NewBudgetService(budgetRepo)

	userID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{
		ID:           1,
		UserID:       userID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(400),
	})

	updated, err := budgetService.UpdateBudget(userID, 1, CreateBudgetInput{
		Category:     "Dining",
		MonthlyLimit: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Category != "Dining" || !updated.MonthlyLimit.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected Dining/500, got %s/%s", updated.Category, updated.MonthlyLimit)
	}
}

func TestDeleteBudget_NotFound(t *testing.T) {
	budgetService := NewBudgetService(testutil.NewMockBudgetRepository())

	if err := budgetService.DeleteBudget(uuid.New(), 42); !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Errorf("Expected ErrBudgetNotFound, got %v", err)
	}
}
