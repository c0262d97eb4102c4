package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Scope narrows a query, typically to the caller's ownership chain.
// A record filtered out by a scope is indistinguishable from a record
// that does not exist.
type Scope func(*gorm.DB) *gorm.DB

// Entity constrains stored types to those that name their own table.
type Entity interface {
	TableName() string
}

// HistoryFunc builds a history row from an entity's current state.
type HistoryFunc[E any, H any] func(e *E, action audit.Action, at time.Time) *H

// AuditedStore persists entities of type E and records every mutation
// as an append-only history row of type H within the same transaction.
// Stores built without a history function skip the history writes.
type AuditedStore[E Entity, H any] struct {
	db          *Database
	makeHistory HistoryFunc[E, H]
	now         func() time.Time
}

// NewAuditedStore creates a store whose mutations are recorded through
// makeHistory. Pass an entity's HistoryRecord method value, for example
// (*party.Person).HistoryRecord.
func NewAuditedStore[E Entity, H any](db *Database, makeHistory HistoryFunc[E, H]) *AuditedStore[E, H] {
	return &AuditedStore[E, H]{
		db:          db,
		makeHistory: makeHistory,
		now:         time.Now,
	}
}

// noHistory is the history type of stores that do not keep history.
type noHistory struct{}

// NewPlainStore creates a store without history bookkeeping, for
// lookup tables and other untracked entities.
func NewPlainStore[E Entity](db *Database) *AuditedStore[E, noHistory] {
	return &AuditedStore[E, noHistory]{
		db:  db,
		now: time.Now,
	}
}

func applyScopes(q *gorm.DB, scopes []Scope) *gorm.DB {
	for _, s := range scopes {
		q = s(q)
	}
	return q
}

// Create inserts the entity and its CREATE history row in one
// transaction. Unique constraint violations map to ErrAlreadyExists.
func (s *AuditedStore[E, H]) Create(ctx context.Context, e *E) error {
	return s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		if s.makeHistory != nil {
			if err := tx.Create(s.makeHistory(e, audit.ActionCreate, s.now())).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Get fetches a single entity by ID under the given scopes.
func (s *AuditedStore[E, H]) Get(ctx context.Context, id int64, scopes ...Scope) (*E, error) {
	var e E
	q := applyScopes(s.db.DB.WithContext(ctx), scopes)
	if err := q.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List fetches all entities visible under the given scopes, ordered by
// ascending ID.
func (s *AuditedStore[E, H]) List(ctx context.Context, scopes ...Scope) ([]E, error) {
	var out []E
	q := applyScopes(s.db.DB.WithContext(ctx), scopes)
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []E{}
	}
	return out, nil
}

// FindOne fetches the lowest-ID entity matching the condition.
func (s *AuditedStore[E, H]) FindOne(ctx context.Context, query string, args ...any) (*E, error) {
	var e E
	err := s.db.DB.WithContext(ctx).Where(query, args...).Order("id ASC").First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Update applies the non-empty change set to the entity identified by
// id, then re-reads it under the same scopes and records an UPDATE
// history row with the merged, post-update state. The re-read keeps the
// transaction from committing a write that moved the record outside the
// caller's scope.
func (s *AuditedStore[E, H]) Update(ctx context.Context, id int64, changes map[string]any, scopes ...Scope) (*E, error) {
	if len(changes) == 0 {
		return nil, shared.ErrNoFieldsProvided
	}

	var out *E
	err := s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e E
		if err := applyScopes(tx, scopes).First(&e, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		changes["updated_at"] = s.now()
		if err := tx.Model(&e).Updates(changes).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}

		var fresh E
		if err := applyScopes(tx, scopes).First(&fresh, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if s.makeHistory != nil {
			if err := tx.Create(s.makeHistory(&fresh, audit.ActionUpdate, s.now())).Error; err != nil {
				return err
			}
		}
		out = &fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the entity identified by id after recording a DELETE
// history row with its final state. History rows survive the delete.
func (s *AuditedStore[E, H]) Delete(ctx context.Context, id int64, scopes ...Scope) error {
	return s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e E
		if err := applyScopes(tx, scopes).First(&e, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if s.makeHistory != nil {
			if err := tx.Create(s.makeHistory(&e, audit.ActionDelete, s.now())).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&e)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
