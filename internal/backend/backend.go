// Package backend defines the persistence boundary: a Backend loads the
// whole document into a store at the start of a command and writes the whole
// document back at the end. The core never writes incrementally.
package backend

import (
	"context"

	"todo/internal/store"
)

// Backend loads and saves the complete list document.
// Load returns an empty store when no state has been persisted yet, and an
// error wrapping store.ErrCorrupt when the persisted document is malformed.
// Save replaces the persisted document in one step; on error nothing partial
// may be left behind.
type Backend interface {
	Load(ctx context.Context) (*store.Store, error)
	Save(ctx context.Context, st *store.Store) error
}
