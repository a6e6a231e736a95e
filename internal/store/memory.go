package store

import (
	"context"
	"sync"

	"valentine.share/internal/models"
)

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)

// MemoryStore is the non-persistent backend used for development and
// tests. Records never expire, so there is no cleanup loop.
type MemoryStore struct {
	surprises map[string]*models.Surprise
	mu        sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		surprises: make(map[string]*models.Surprise),
	}
}

func (s *MemoryStore) Save(ctx context.Context, sp *models.Surprise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.surprises == nil {
		return ErrUnavailable
	}
	s.surprises[sp.ID] = sp
	return nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.Surprise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.surprises == nil {
		return nil, ErrUnavailable
	}
	sp, ok := s.surprises[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sp, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surprises = nil
	return nil
}
