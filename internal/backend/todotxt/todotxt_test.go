package todotxt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"todo/internal/store"
	"todo/internal/testutil"
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
			Name: "personal",
			Items: []*store.Item{
				{Name: "bins", Done: true, RepeatEvery: 7, RepeatNext: 20699},
				{Name: "gym"},
			},
		},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return st
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "todo.txt"))
	st, err := b.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Lists()) != 0 {
		t.Errorf("expected empty document, got %d lists", len(st.Lists()))
	}
}

func TestRoundTrip(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "todo.txt"))
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

func TestSave_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	b := New(path)

	if err := b.Save(context.Background(), fixture(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	testutil.Golden(t, "document", data)
}

func TestLoad_CorruptInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "entry before header",
			content: "\t- email\n",
			wantMsg: "line 1",
		},
		{
			name:    "header without colon",
			content: "work\n",
			wantMsg: "line 1",
		},
		{
			name:    "unknown marker",
			content: "work:\n\t? email\n",
			wantMsg: "line 2",
		},
		{
			name:    "bad date",
			content: "work:\n\t- @2026-09-01 email\n",
			wantMsg: "line 2",
		},
		{
			name:    "bad priority",
			content: "work:\n\t- !high email\n",
			wantMsg: "line 2",
		},
		{
			name:    "bad repeat",
			content: "work:\n\t- ~weekly bins\n",
			wantMsg: "line 2",
		},
		{
			name:    "dangling reference",
			content: "work:\n\t= ghost\n",
			wantMsg: "ghost",
		},
		{
			name:    "duplicate list",
			content: "work:\nwork:\n",
			wantMsg: "work",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "todo.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := New(path).Load(context.Background())
			if !errors.Is(err, store.ErrCorrupt) {
				t.Fatalf("expected corrupt error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
