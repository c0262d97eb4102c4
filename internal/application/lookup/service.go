package lookup

import (
	"context"

	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// Service provides CRUD over a single lookup table. All lookup tables
// share the same shape of operations, so one generic service covers
// every type; handlers supply the concrete entity and change set.
type Service[E any] struct {
	store persistence.Store[E]
}

// NewService creates a lookup service backed by the given store.
func NewService[E any](store persistence.Store[E]) *Service[E] {
	return &Service[E]{store: store}
}

// Create inserts a new lookup row.
func (s *Service[E]) Create(ctx context.Context, e *E) (*E, error) {
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get retrieves a lookup row by id.
func (s *Service[E]) Get(ctx context.Context, id int64) (*E, error) {
	return s.store.Get(ctx, id)
}

// List returns all rows ordered by ascending id.
func (s *Service[E]) List(ctx context.Context) ([]E, error) {
	return s.store.List(ctx)
}

// Update applies the given column changes to the row.
func (s *Service[E]) Update(ctx context.Context, id int64, changes map[string]any) (*E, error) {
	return s.store.Update(ctx, id, changes)
}

// Delete removes the row.
func (s *Service[E]) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
