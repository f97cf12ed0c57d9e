package store

import (
	"errors"
	"reflect"
	"testing"
)

func itemNames(items []*Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func TestAddReference_RejectsCycles(t *testing.T) {
	st := mustStore(t,
		&List{Name: "a"},
		&List{Name: "b"},
		&List{Name: "c"},
	)

	if err := st.AddReference("a", "b"); err != nil {
		t.Fatalf("AddReference(a, b): %v", err)
	}
	if err := st.AddReference("b", "c"); err != nil {
		t.Fatalf("AddReference(b, c): %v", err)
	}

	tests := []struct {
		name      string
		dest, src string
	}{
		{name: "self reference", dest: "a", src: "a"},
		{name: "direct cycle", dest: "b", src: "a"},
		{name: "transitive cycle", dest: "c", src: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := st.Snapshot()
			err := st.AddReference(tt.dest, tt.src)
			if !errors.Is(err, ErrCycle) {
				t.Fatalf("expected ErrCycle, got %v", err)
			}
			if !reflect.DeepEqual(before, st.Snapshot()) {
				t.Error("failed AddReference must not mutate the store")
			}
		})
	}
}

func TestAddReference_RejectsDuplicateEdge(t *testing.T) {
	st := mustStore(t,
		&List{Name: "a", Refs: []string{"b"}},
		&List{Name: "b"},
	)
	if err := st.AddReference("a", "b"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestAddReference_UnrelatedGraphDoesNotBlock(t *testing.T) {
	// An edge elsewhere in the graph must not block an acyclic add.
	st := mustStore(t,
		&List{Name: "a", Refs: []string{"b"}},
		&List{Name: "b"},
		&List{Name: "c"},
		&List{Name: "d"},
	)
	if err := st.AddReference("c", "d"); err != nil {
		t.Fatalf("AddReference(c, d): %v", err)
	}
}

func TestRemoveReference(t *testing.T) {
	st := mustStore(t,
		&List{Name: "a", Refs: []string{"b"}},
		&List{Name: "b"},
	)

	if err := st.RemoveReference("a", "b"); err != nil {
		t.Fatalf("RemoveReference: %v", err)
	}
	if err := st.RemoveReference("a", "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEffectiveItems_OrderAndRecursion(t *testing.T) {
	st := mustStore(t,
		&List{Name: "top", Items: []*Item{{Name: "t1"}, {Name: "t2"}}, Refs: []string{"mid"}},
		&List{Name: "mid", Items: []*Item{{Name: "m1"}}, Refs: []string{"leaf"}},
		&List{Name: "leaf", Items: []*Item{{Name: "l1"}}},
	)

	items, err := st.EffectiveItems("top")
	if err != nil {
		t.Fatalf("EffectiveItems: %v", err)
	}
	want := []string{"t1", "t2", "m1", "l1"}
	if got := itemNames(items); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEffectiveItems_DiamondDeduplicates(t *testing.T) {
	// dest -> {a, b}, a -> {c}, b -> {c}: c's items appear exactly once.
	st := mustStore(t,
		&List{Name: "dest", Refs: []string{"a", "b"}},
		&List{Name: "a", Refs: []string{"c"}},
		&List{Name: "b", Refs: []string{"c"}},
		&List{Name: "c", Items: []*Item{{Name: "shared"}}},
	)

	items, err := st.EffectiveItems("dest")
	if err != nil {
		t.Fatalf("EffectiveItems: %v", err)
	}
	if got := itemNames(items); !reflect.DeepEqual(got, []string{"shared"}) {
		t.Errorf("expected [shared], got %v", got)
	}
}

func TestEffectiveItems_SharedNamesAcrossLists(t *testing.T) {
	// Item names are unique per list, not across references.
	st := mustStore(t,
		&List{Name: "a", Items: []*Item{{Name: "milk"}}, Refs: []string{"b"}},
		&List{Name: "b", Items: []*Item{{Name: "milk"}}},
	)

	items, err := st.EffectiveItems("a")
	if err != nil {
		t.Fatalf("EffectiveItems: %v", err)
	}
	if got := itemNames(items); !reflect.DeepEqual(got, []string{"milk", "milk"}) {
		t.Errorf("expected both items, got %v", got)
	}
}
