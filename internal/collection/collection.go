// Package collection implements durable CRUD over homogeneous lists of
// records, each list materialized as a single JSON document. Every
// operation re-reads the document first and every mutation rewrites it
// wholesale; there is no cache between requests.
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

// Entity is a record that carries its own integer id.
type Entity[T any] interface {
	// EntityID returns the record's id, 0 if unassigned.
	EntityID() int
	// WithID returns a copy of the record with the given id attached.
	WithID(id int) T
}

// Collection is a list of records of one entity type backed by an
// injected document store. A mutex serializes each read-modify-write
// cycle so two in-process writers cannot lose each other's update.
type Collection[T Entity[T]] struct {
	name   string
	store  storage.Store
	seed   []T
	logger *slog.Logger

	mu sync.Mutex
}

// New creates a collection named name over store. When the backing
// document does not exist yet, the first operation persists seed as the
// initial content.
func New[T Entity[T]](name string, store storage.Store, seed []T, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		store:  store,
		seed:   seed,
		logger: logger,
	}
}

// NextID returns the id the next created record receives: one past the
// highest id currently in items, or 1 when items is empty. Deletion never
// renumbers, so deleting anything but the highest-numbered record can
// never cause a number to be reissued.
func NextID[T Entity[T]](items []T) int {
	max := 0
	for _, it := range items {
		if id := it.EntityID(); id > max {
			max = id
		}
	}
	return max + 1
}

// load reads the full list, seeding the document on first use. A missing
// document is not an error; any other read failure wraps ErrStorage.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	err := c.store.Load(ctx, &items)
	switch {
	case errors.Is(err, storage.ErrNotExist):
		items = append([]T(nil), c.seed...)
		if err := c.store.Save(ctx, items); err != nil {
			return nil, fmt.Errorf("%w: seed %s: %v", domain.ErrStorage, c.name, err)
		}
		c.logger.Info("collection seeded", "collection", c.name, "records", len(items))
		return items, nil
	case err != nil:
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, c.name, err)
	}
	return items, nil
}

// loadLenient degrades an unreadable document to an empty list, matching
// the site's read policy: a broken document must never take down a page.
func (c *Collection[T]) loadLenient(ctx context.Context) []T {
	items, err := c.load(ctx)
	if err != nil {
		c.logger.Warn("collection unreadable, treating as empty", "collection", c.name, "error", err)
		return nil
	}
	return items
}

// List returns all records in stored order. Fails with ErrStorage when
// the document cannot be read; callers are expected to fall back to an
// empty list.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	for _, it := range c.loadLenient(ctx) {
		if it.EntityID() == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%w: %s id %d", domain.ErrNotFound, c.name, id)
}

// Create assigns the next id to item, appends it, persists the full list
// and returns the stored record.
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items := c.loadLenient(ctx)
	created := item.WithID(NextID(items))
	items = append(items, created)
	if err := c.store.Save(ctx, items); err != nil {
		return zero, fmt.Errorf("%w: write %s: %v", domain.ErrStorage, c.name, err)
	}
	c.logger.Info("record created", "collection", c.name, "id", created.EntityID())
	return created, nil
}

// Update locates the record with the given id, replaces it in place with
// merge(current) and persists the full list. When the id is absent it
// returns ErrNotFound without writing, leaving the persisted document
// untouched. The merged record keeps its original id.
func (c *Collection[T]) Update(ctx context.Context, id int, merge func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items := c.loadLenient(ctx)
	for i, it := range items {
		if it.EntityID() != id {
			continue
		}
		merged := merge(it).WithID(id)
		items[i] = merged
		if err := c.store.Save(ctx, items); err != nil {
			return zero, fmt.Errorf("%w: write %s: %v", domain.ErrStorage, c.name, err)
		}
		c.logger.Info("record updated", "collection", c.name, "id", id)
		return merged, nil
	}
	return zero, fmt.Errorf("%w: %s id %d", domain.ErrNotFound, c.name, id)
}

// Delete removes the record with the given id and persists the filtered
// list. Returns ErrNotFound when no record matched, in which case the
// document is left untouched.
func (c *Collection[T]) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLenient(ctx)
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%w: %s id %d", domain.ErrNotFound, c.name, id)
	}
	if err := c.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, c.name, err)
	}
	c.logger.Info("record deleted", "collection", c.name, "id", id)
	return nil
}
