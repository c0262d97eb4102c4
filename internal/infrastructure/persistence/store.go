package persistence

import "context"

// Store is the persistence surface application services depend on.
// AuditedStore is the production implementation; tests substitute mocks.
type Store[E any] interface {
	Create(ctx context.Context, e *E) error
	Get(ctx context.Context, id int64, scopes ...Scope) (*E, error)
	List(ctx context.Context, scopes ...Scope) ([]E, error)
	FindOne(ctx context.Context, query string, args ...any) (*E, error)
	Update(ctx context.Context, id int64, changes map[string]any, scopes ...Scope) (*E, error)
	Delete(ctx context.Context, id int64, scopes ...Scope) error
}

// Reader is the read-only surface used for history tables.
type Reader[E any] interface {
	Get(ctx context.Context, id int64, scopes ...Scope) (*E, error)
	List(ctx context.Context, scopes ...Scope) ([]E, error)
}
