package party

import (
	"context"

	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// HistoryService exposes read-only access to one history table.
// History rows are written only by the audited stores; over HTTP they
// can never be created, changed, or deleted.
type HistoryService[H any] struct {
	records persistence.Reader[H]
}

// NewHistoryService creates a history reader over the given table.
func NewHistoryService[H any](records persistence.Reader[H]) *HistoryService[H] {
	return &HistoryService[H]{records: records}
}

// Get retrieves a single history row by id.
func (s *HistoryService[H]) Get(ctx context.Context, id int64) (*H, error) {
	return s.records.Get(ctx, id)
}

// List returns all history rows ordered by ascending id.
func (s *HistoryService[H]) List(ctx context.Context) ([]H, error) {
	return s.records.List(ctx)
}
