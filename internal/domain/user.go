package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user. All other entities are scoped to
// exactly one user via UserID.
type User struct {
	ID         uuid.UUID `json:"id"`
	Auth0ID    string    `json:"auth0Id"`
	Email      string    `json:"email"`
	Name       *string   `json:"name"`
	PictureURL *string   `json:"pictureUrl"`
	Currency   string    `json:"currency"`
	Theme      string    `json:"theme"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Preference defaults applied when a user record is first created.
const (
	DefaultCurrency = "USD"
	DefaultTheme    = "light"
)

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(id uuid.UUID) (*User, error)
	GetByAuth0ID(auth0ID string) (*User, error)
	Create(user *User) (*User, error)
	Update(user *User) (*User, error)
	CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*User, error)
}
