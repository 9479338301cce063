package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"
	"time"

	"github.com/centavo-app/centavo-backend/internal/repository/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	MaxAvatarSize   = 5 * 1024 * 1024 // 5MB
	MinAvatarWidth  = 50
	MinAvatarHeight = 50
	AvatarSize      = 256
	JPEGQuality     = 85

	// Presigned avatar URLs stay valid long enough for a client session.
	AvatarURLExpiry = 12 * time.Hour
)

var (
	ErrAvatarTooLarge             = errors.New("file too large. Maximum size is 5MB")
	ErrInvalidAvatarFormat        = errors.New("invalid format. Supported: JPEG, PNG, WebP")
	ErrAvatarTooSmall             = errors.New("image too small. Minimum 50x50 pixels")
	ErrInvalidAvatarData          = errors.New("invalid image data")
	ErrAvatarStorageNotConfigured = errors.New("avatar storage not configured")
)

// allowedAvatarExtensions maps extensions to content types
var allowedAvatarExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// AvatarService handles profile picture processing and storage
type AvatarService struct {
	storage storage.AvatarRepository
}

// NewAvatarService creates a new AvatarService
func NewAvatarService(storage storage.AvatarRepository) *AvatarService {
	return &AvatarService{storage: storage}
}

// IsEnabled indicates whether uploads are supported (storage configured).
func (s *AvatarService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// validateAndDecode validates the upload and returns the decoded image
func (s *AvatarService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	if len(data) > MaxAvatarSize {
		return nil, ErrAvatarTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedAvatarExtensions[ext]; !ok {
		return nil, ErrInvalidAvatarFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidAvatarData
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinAvatarWidth || bounds.Dy() < MinAvatarHeight {
		return nil, ErrAvatarTooSmall
	}

	return img, nil
}

// ProcessAndUpload crops the image to a square avatar, uploads it, and
// returns the stored object path. The previous avatar at oldPath is
// best-effort deleted.
func (s *AvatarService) ProcessAndUpload(ctx context.Context, userID uuid.UUID, data []byte, filename string, oldPath *string) (string, error) {
	if !s.IsEnabled() {
		return "", ErrAvatarStorageNotConfigured
	}

	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return "", err
	}

	processed := imaging.Fill(img, AvatarSize, AvatarSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	objectPath := fmt.Sprintf("avatars/%s/%s.jpg", userID, uuid.New())
	path, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if oldPath != nil {
		_ = s.Delete(ctx, *oldPath)
	}

	return path, nil
}

// Delete removes a stored avatar. External picture URLs are not stored
// objects and are ignored.
func (s *AvatarService) Delete(ctx context.Context, objectPath string) error {
	if objectPath == "" || strings.HasPrefix(objectPath, "http://") || strings.HasPrefix(objectPath, "https://") {
		return nil
	}
	if !s.IsEnabled() {
		return ErrAvatarStorageNotConfigured
	}
	return s.storage.Delete(ctx, objectPath)
}

// PresignURL generates a temporary URL for a stored avatar. External
// picture URLs (from the identity provider) pass through untouched.
func (s *AvatarService) PresignURL(ctx context.Context, pictureURL *string) *string {
	if pictureURL == nil || *pictureURL == "" {
		return nil
	}
	if strings.HasPrefix(*pictureURL, "http://") || strings.HasPrefix(*pictureURL, "https://") {
		return pictureURL
	}
	if !s.IsEnabled() {
		return nil
	}
	url, err := s.storage.GeneratePresignedURL(ctx, *pictureURL, AvatarURLExpiry)
	if err != nil {
		return nil
	}
	return &url
}
