package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"atelier/internal/domain"
	"atelier/internal/storage"
)

// Singleton is a store for an entity type with exactly one instance,
// addressed without an id (site settings). Reads that fail return the
// seed value rather than an error, so the record is always non-null.
type Singleton[T any] struct {
	name   string
	store  storage.Store
	seed   T
	logger *slog.Logger

	mu sync.Mutex
}

// NewSingleton creates a singleton record store named name over store.
// seed is persisted on first use and returned whenever the document is
// unreadable.
func NewSingleton[T any](name string, store storage.Store, seed T, logger *slog.Logger) *Singleton[T] {
	return &Singleton[T]{
		name:   name,
		store:  store,
		seed:   seed,
		logger: logger,
	}
}

func (s *Singleton[T]) load(ctx context.Context) T {
	var value T
	err := s.store.Load(ctx, &value)
	switch {
	case errors.Is(err, storage.ErrNotExist):
		if err := s.store.Save(ctx, s.seed); err != nil {
			s.logger.Warn("could not seed record", "record", s.name, "error", err)
		} else {
			s.logger.Info("record seeded", "record", s.name)
		}
		return s.seed
	case err != nil:
		s.logger.Warn("record unreadable, using defaults", "record", s.name, "error", err)
		return s.seed
	}
	return value
}

// Get returns the current record, falling back to the seed value when the
// document is absent or unreadable.
func (s *Singleton[T]) Get(ctx context.Context) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Update replaces the record with merge(current), persists it and returns
// the merged value.
func (s *Singleton[T]) Update(ctx context.Context, merge func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	merged := merge(s.load(ctx))
	if err := s.store.Save(ctx, merged); err != nil {
		return zero, fmt.Errorf("%w: write %s: %v", domain.ErrStorage, s.name, err)
	}
	s.logger.Info("record updated", "record", s.name)
	return merged, nil
}
