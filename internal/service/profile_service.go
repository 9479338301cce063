package service

import (
	"strings"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/websocket"
)

// Currencies the client can render. Preferences outside this set are
// rejected rather than stored.
var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "PHP": true,
	"INR": true, "CAD": true, "AUD": true, "SGD": true, "BRL": true,
}

var supportedThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

// ProfileService handles profile-related business logic
type ProfileService struct {
	userRepo       domain.UserRepository
	eventPublisher websocket.EventPublisher
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *ProfileService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// GetProfile retrieves a user's profile by Auth0 ID
func (s *ProfileService) GetProfile(auth0ID string) (*domain.User, error) {
	return s.userRepo.GetByAuth0ID(auth0ID)
}

// UpdateProfileInput holds the updatable profile fields. Nil fields keep
// their current value.
type UpdateProfileInput struct {
	Name     *string
	Currency *string
	Theme    *string
}

// UpdateProfile updates a user's profile preferences by Auth0 ID
func (s *ProfileService) UpdateProfile(auth0ID string, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByAuth0ID(auth0ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		if len(name) > domain.MaxNameLength {
			return nil, domain.ErrNameTooLong
		}
		user.Name = &name
	}
	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if !supportedCurrencies[currency] {
			return nil, domain.ErrInvalidInput
		}
		user.Currency = currency
	}
	if input.Theme != nil {
		theme := strings.ToLower(strings.TrimSpace(*input.Theme))
		if !supportedThemes[theme] {
			return nil, domain.ErrInvalidInput
		}
		user.Theme = theme
	}

	updated, err := s.userRepo.Update(user)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(updated.ID, websocket.ProfileUpdated(updated))
	}

	return updated, nil
}

// SetPictureURL stores the avatar object path on the user's profile
func (s *ProfileService) SetPictureURL(auth0ID string, pictureURL *string) (*domain.User, error) {
	user, err := s.userRepo.GetByAuth0ID(auth0ID)
	if err != nil {
		return nil, err
	}
	user.PictureURL = pictureURL

	updated, err := s.userRepo.Update(user)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(updated.ID, websocket.ProfileUpdated(updated))
	}

	return updated, nil
}
