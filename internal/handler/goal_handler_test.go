package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newGoalHandler() (*GoalHandler, *testutil.MockGoalRepository) {
	repo := testutil.NewMockGoalRepository()
	return NewGoalHandler(service.NewGoalService(repo)), repo
}

func TestCreateGoal_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newGoalHandler()

	body := `{"name": "Emergency Fund", "targetAmount": "10000.00", "savedAmount": "2500.00", "targetDate": "2025-12-31"}`
	req := jsonRequest(http.MethodPost, "/api/v1/goals", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|goal", "g@example.com", "", "", uuid.New())

	err := handler.CreateGoal(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response GoalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Name != "Emergency Fund" {
		t.Errorf("Expected name 'Emergency Fund', got %s", response.Name)
	}
	if response.SavedAmount != "2500.00" {
		t.Errorf("Expected saved '2500.00', got %s", response.SavedAmount)
	}
	if response.TargetDate == nil || *response.TargetDate != "2025-12-31" {
		t.Error("Expected target date '2025-12-31'")
	}
}

func TestCreateGoal_DefaultsSavedToZero(t *testing.T) {
	e := echo.New()
	handler, _ := newGoalHandler()

	body := `{"name": "Vacation", "targetAmount": "3000.00"}`
	req := jsonRequest(http.MethodPost, "/api/v1/goals", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|goal", "g@example.com", "", "", uuid.New())

	err := handler.CreateGoal(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response GoalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.SavedAmount != "0.00" {
		t.Errorf("Expected saved '0.00', got %s", response.SavedAmount)
	}
}

func TestCreateGoal_EmptyName(t *testing.T) {
	e := echo.New()
	handler, _ := newGoalHandler()

	body := `{"name": "   ", "targetAmount": "3000.00"}`
	req := jsonRequest(http.MethodPost, "/api/v1/goals", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithUser(c, "auth0|goal", "g@example.com", "", "", uuid.New())

	err := handler.CreateGoal(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateSavedAmount_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newGoalHandler()
	userID := uuid.New()

	repo.AddGoal(&domain.Goal{
		UserID: userID, Name: "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000),
		SavedAmount:  decimal.NewFromInt(1000),
	})

	body := `{"savedAmount": "4200.00"}`
	req := jsonRequest(http.MethodPatch, "/api/v1/goals/1/saved", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	setupAuthContextWithUser(c, "auth0|goal", "g@example.com", "", "", userID)

	err := handler.UpdateSavedAmount(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response GoalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.SavedAmount != "4200.00" {
		t.Errorf("Expected saved '4200.00', got %s", response.SavedAmount)
	}
}

func TestUpdateSavedAmount_Negative(t *testing.T) {
	e := echo.New()
	handler, repo := newGoalHandler()
	userID := uuid.New()

	repo.AddGoal(&domain.Goal{
		UserID: userID, Name: "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000),
	})

	body := `{"savedAmount": "-1.00"}`
	req := jsonRequest(http.MethodPatch, "/api/v1/goals/1/saved", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	setupAuthContextWithUser(c, "auth0|goal", "g@example.com", "", "", userID)

	err := handler.UpdateSavedAmount(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteGoal_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newGoalHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/goals/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	setupAuthContextWithUser(c, "auth0|goal", "g@example.com", "", "", uuid.New())

	err := handler.DeleteGoal(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
