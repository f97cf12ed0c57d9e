// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"time"

	"todo/internal/store"
)

// FakeBackend is an in-memory backend.Backend for testing: it hands out a
// prepared store and records what gets saved.
type FakeBackend struct {
	Store *store.Store

	// Saved holds the lists from the last successful Save.
	Saved []*store.List

	// SaveCalls counts Save invocations.
	SaveCalls int

	// Error injection
	LoadErr error
	SaveErr error
}

// NewFakeBackend creates a fake backend around an empty store.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{Store: store.New()}
}

// Load implements backend.Backend.
func (f *FakeBackend) Load(ctx context.Context) (*store.Store, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return f.Store, nil
}

// Save implements backend.Backend.
func (f *FakeBackend) Save(ctx context.Context, st *store.Store) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saved = st.Snapshot()
	return nil
}

// Seed builds a store from lists, failing the test on invalid fixtures is
// the caller's concern: invalid input panics.
func Seed(lists ...*store.List) *store.Store {
	st, err := store.FromLists(lists)
	if err != nil {
		panic(err)
	}
	return st
}

// ListOf is a fixture helper: a list with the given own items and references.
func ListOf(name string, items []*store.Item, refs ...string) *store.List {
	return &store.List{Name: name, Items: items, Refs: refs}
}

// ItemNamed is a fixture helper for an open item without a deadline.
func ItemNamed(name string) *store.Item {
	return &store.Item{Name: name}
}

// DoneItem is a fixture helper for a completed item.
func DoneItem(name string) *store.Item {
	return &store.Item{Name: name, Done: true}
}

// DueItem is a fixture helper for an open item with a deadline.
func DueItem(name string, due time.Time) *store.Item {
	return &store.Item{Name: name, Due: due}
}
