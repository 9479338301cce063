package service

import (
	"testing"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
)

func TestAuthenticateUser_NewUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo)

	result, err := authService.AuthenticateUser("auth0|new", "new@example.com", strPtr("New User"), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.IsNewUser {
		t.Error("Expected IsNewUser to be true for first login")
	}
	if result.User.Email != "new@example.com" {
		t.Errorf("Expected email 'new@example.com', got %s", result.User.Email)
	}
	if result.User.Currency != domain.DefaultCurrency {
		t.Errorf("Expected default currency, got %s", result.User.Currency)
	}
}

func TestAuthenticateUser_ExistingUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo)

	existing := &domain.User{
		ID:      uuid.New(),
		Auth0ID: "auth0|known",
		Email:   "known@example.com",
	}
	userRepo.AddUser(existing)

	result, err := authService.AuthenticateUser("auth0|known", "known@example.com", nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.IsNewUser {
		t.Error("Expected IsNewUser to be false for returning user")
	}
	if result.User.ID != existing.ID {
		t.Errorf("Expected existing user ID %s, got %s", existing.ID, result.User.ID)
	}
}

func TestGetUserByAuth0ID_NotFound(t *testing.T) {
	authService := NewAuthService(testutil.NewMockUserRepository())

	_, err := authService.GetUserByAuth0ID("auth0|ghost")
	if err != domain.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
