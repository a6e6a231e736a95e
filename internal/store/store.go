package store

import (
	"context"
	"errors"

	"valentine.share/internal/models"
)

var (
	ErrNotFound    = errors.New("surprise not found")
	ErrUnavailable = errors.New("storage unavailable")
	ErrWriteFailed = errors.New("storage write failed")
)

// Store persists surprise documents keyed by their generated id.
// Save performs no uniqueness check; collision resistance comes from
// the 128-bit random ids.
type Store interface {
	Save(ctx context.Context, s *models.Surprise) error
	FindByID(ctx context.Context, id string) (*models.Surprise, error)
	Close() error
}
