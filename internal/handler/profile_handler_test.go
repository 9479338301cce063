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
)

func newProfileHandler() (*ProfileHandler, *testutil.MockUserRepository) {
	userRepo := testutil.NewMockUserRepository()
	profileService := service.NewProfileService(userRepo)
	avatarService := service.NewAvatarService(nil)
	return NewProfileHandler(profileService, avatarService), userRepo
}

func seedProfileUser(userRepo *testutil.MockUserRepository, auth0ID string) *domain.User {
	name := "Alex"
	user := &domain.User{
		ID:       uuid.New(),
		Auth0ID:  auth0ID,
		Email:    "alex@example.com",
		Name:     &name,
		Currency: domain.DefaultCurrency,
		Theme:    domain.DefaultTheme,
	}
	userRepo.AddUser(user)
	return user
}

func TestGetProfile_Success(t *testing.T) {
	e := echo.New()
	handler, userRepo := newProfileHandler()
	seedProfileUser(userRepo, "auth0|profile")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|profile", "alex@example.com", "", "")

	err := handler.GetProfile(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Email != "alex@example.com" {
		t.Errorf("Expected email 'alex@example.com', got %s", response.Email)
	}
	if response.Name == nil || *response.Name != "Alex" {
		t.Error("Expected name 'Alex'")
	}
	if response.Currency != domain.DefaultCurrency {
		t.Errorf("Expected default currency, got %s", response.Currency)
	}
}

func TestGetProfile_Unauthorized(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetProfile(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|ghost", "ghost@example.com", "", "")

	err := handler.GetProfile(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestUpdateProfile_Preferences(t *testing.T) {
	e := echo.New()
	handler, userRepo := newProfileHandler()
	seedProfileUser(userRepo, "auth0|profile")

	body := `{"currency": "EUR", "theme": "dark"}`
	req := jsonRequest(http.MethodPut, "/api/v1/profile", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|profile", "alex@example.com", "", "")

	err := handler.UpdateProfile(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Currency != "EUR" {
		t.Errorf("Expected currency 'EUR', got %s", response.Currency)
	}
	if response.Theme != "dark" {
		t.Errorf("Expected theme 'dark', got %s", response.Theme)
	}
	// Name untouched
	if response.Name == nil || *response.Name != "Alex" {
		t.Error("Expected name to be unchanged")
	}
}

func TestUpdateProfile_EmptyBody(t *testing.T) {
	e := echo.New()
	handler, userRepo := newProfileHandler()
	seedProfileUser(userRepo, "auth0|profile")

	req := jsonRequest(http.MethodPut, "/api/v1/profile", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|profile", "alex@example.com", "", "")

	err := handler.UpdateProfile(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateProfile_InvalidCurrency(t *testing.T) {
	e := echo.New()
	handler, userRepo := newProfileHandler()
	seedProfileUser(userRepo, "auth0|profile")

	body := `{"currency": "DOGE"}`
	req := jsonRequest(http.MethodPut, "/api/v1/profile", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|profile", "alex@example.com", "", "")

	err := handler.UpdateProfile(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if problem.Type != ErrorTypeValidation {
		t.Errorf("Expected validation error type, got %s", problem.Type)
	}
}

func TestUploadAvatar_StorageDisabled(t *testing.T) {
	e := echo.New()
	handler, userRepo := newProfileHandler()
	seedProfileUser(userRepo, "auth0|profile")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/avatar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|profile", "alex@example.com", "", "")

	err := handler.UploadAvatar(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}

func TestDeleteAvatar_ClearsPicture(t *testing.T) {
	e := echo.New()
	handler, userRepo := newProfileHandler()
	user := seedProfileUser(userRepo, "auth0|profile")
	pic := "https://cdn.example.com/pic.jpg"
	user.PictureURL = &pic

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/profile/avatar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|profile", "alex@example.com", "", "")

	err := handler.DeleteAvatar(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.PictureURL != nil {
		t.Errorf("Expected picture to be cleared, got %s", *response.PictureURL)
	}
}
