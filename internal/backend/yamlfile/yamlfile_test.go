package yamlfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"todo/internal/store"
)

func fixture(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.FromLists([]*store.List{
		{
			Name: "work",
			Items: []*store.Item{
				{Name: "email", Due: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
				{Name: "expense report", Done: true, Priority: 2},
			},
			Refs: []string{"personal"},
		},
		{
			Name:  "personal",
			Items: []*store.Item{{Name: "bins", RepeatEvery: 7, RepeatNext: 20699}},
		},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return st
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "todo.yaml"))
	st, err := b.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Lists()) != 0 {
		t.Errorf("expected empty document, got %d lists", len(st.Lists()))
	}
}

func TestRoundTrip(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "todo.yaml"))
	want := fixture(t)

	if err := b.Save(context.Background(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := b.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got.Snapshot(), want.Snapshot()) {
		t.Errorf("round trip mismatch\ngot:  %+v\nwant: %+v", got.Snapshot(), want.Snapshot())
	}
}

func TestLoad_CorruptInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not a sequence", content: "just a string\n"},
		{name: "unknown entry type", content: "- name: work\n  entries:\n    - type: note\n      name: hm\n"},
		{name: "bad date", content: "- name: work\n  entries:\n    - type: item\n      name: email\n      date: someday\n"},
		{name: "dangling reference", content: "- name: work\n  entries:\n    - type: list\n      name: ghost\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "todo.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := New(path).Load(context.Background()); !errors.Is(err, store.ErrCorrupt) {
				t.Fatalf("expected corrupt error, got %v", err)
			}
		})
	}
}
