// Package storage defines the session store contract and its errors.
package storage

import (
	"context"
	"time"

	"recruiting-lab/internal/generation"
)

// SessionRecord is the stored state of one analytics session. The random
// stream of a session is fully determined by Seed and Pass, so a record is
// enough to resume it.
type SessionRecord struct {
	ID        string
	Seed      int64
	Pass      int
	CreatedAt time.Time
	UpdatedAt time.Time
	Dataset   *generation.Dataset
}

// Clone returns a deep copy of r.
func (r *SessionRecord) Clone() *SessionRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Dataset = r.Dataset.Clone()
	return &out
}

// SessionStore holds sessions keyed by ID. Implementations hand out copies;
// callers never share a dataset with the store or with each other.
type SessionStore interface {
	// Insert adds a new session. Returns ErrDuplicateKey if the ID exists.
	Insert(ctx context.Context, r *SessionRecord) error

	// Get retrieves a session by ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, id string) (*SessionRecord, error)

	// Update replaces an existing session. Returns ErrNotFound if not exists.
	Update(ctx context.Context, r *SessionRecord) error

	// Delete removes a session. Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id string) error

	// List returns all sessions ordered by CreatedAt ASC, then ID.
	List(ctx context.Context) ([]*SessionRecord, error)
}
