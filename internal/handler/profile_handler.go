package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
	avatarService  *service.AvatarService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService, avatarService *service.AvatarService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		avatarService:  avatarService,
	}
}

// ProfileResponse represents the profile response
type ProfileResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	PictureURL *string `json:"pictureUrl"`
	Currency   string  `json:"currency"`
	Theme      string  `json:"theme"`
}

// UpdateProfileRequest represents the update profile request.
// Omitted fields keep their current value.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

func (h *ProfileHandler) profileResponse(c echo.Context, user *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		PictureURL: h.avatarService.PresignURL(c.Request().Context(), user.PictureURL),
		Currency:   user.Currency,
		Theme:      user.Theme,
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.profileService.GetProfile(auth0ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, h.profileResponse(c, user))
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Name == nil && req.Currency == nil && req.Theme == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "At least one field must be provided"},
		})
	}

	user, err := h.profileService.UpdateProfile(auth0ID, service.UpdateProfileInput{
		Name:     req.Name,
		Currency: req.Currency,
		Theme:    req.Theme,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return NewNotFoundError(c, "User not found")
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Unsupported currency or theme"},
			})
		default:
			log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to update profile")
			return NewInternalError(c, "Failed to update profile")
		}
	}

	log.Info().Str("auth0_id", auth0ID).Msg("Profile updated")

	return c.JSON(http.StatusOK, h.profileResponse(c, user))
}

// UploadAvatar handles POST /profile/avatar
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	// Don't attempt to process/upload without configured storage
	if !h.avatarService.IsEnabled() {
		return NewServiceUnavailableError(c, "Avatar uploads are disabled (storage not configured)")
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "avatar", Message: "File is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to process file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		return NewInternalError(c, "Failed to read file")
	}

	user, err := h.profileService.GetProfile(auth0ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}

	objectPath, err := h.avatarService.ProcessAndUpload(c.Request().Context(), user.ID, data, file.Filename, user.PictureURL)
	if err != nil {
		switch err {
		case service.ErrAvatarTooLarge:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "avatar", Message: "File too large. Maximum size is 5MB"},
			})
		case service.ErrInvalidAvatarFormat:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "avatar", Message: "Invalid format. Supported: JPEG, PNG, WebP"},
			})
		case service.ErrAvatarTooSmall:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "avatar", Message: "Image too small. Minimum 50x50 pixels"},
			})
		case service.ErrInvalidAvatarData:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "avatar", Message: "Invalid image data"},
			})
		default:
			log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to upload avatar")
			return NewInternalError(c, "Failed to upload avatar")
		}
	}

	updated, err := h.profileService.SetPictureURL(auth0ID, &objectPath)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to store avatar path")
		return NewInternalError(c, "Failed to update profile")
	}

	log.Info().
		Str("auth0_id", auth0ID).
		Str("object_path", objectPath).
		Msg("Avatar uploaded")

	return c.JSON(http.StatusOK, h.profileResponse(c, updated))
}

// DeleteAvatar handles DELETE /profile/avatar
func (h *ProfileHandler) DeleteAvatar(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.profileService.GetProfile(auth0ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}

	// Stored object paths are cleaned up; external provider URLs are just unlinked
	if user.PictureURL != nil && h.avatarService.IsEnabled() {
		if err := h.avatarService.Delete(c.Request().Context(), *user.PictureURL); err != nil {
			log.Warn().Err(err).Str("auth0_id", auth0ID).Msg("Failed to delete stored avatar")
		}
	}

	updated, err := h.profileService.SetPictureURL(auth0ID, nil)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to clear avatar")
		return NewInternalError(c, "Failed to update profile")
	}

	return c.JSON(http.StatusOK, h.profileResponse(c, updated))
}
