package store

import (
	"reflect"
	"testing"
	"time"
)

// A full session against an empty store, exercising the common command
// sequence end to end: build lists, link them, work through the items,
// then clean up.
func TestDailyWorkflow(t *testing.T) {
	st := New()

	for _, name := range []string{"work", "personal", "everything"} {
		if err := st.CreateList(name); err != nil {
			t.Fatalf("CreateList(%q): %v", name, err)
		}
	}
	if err := st.AddItem("work", "email", time.Time{}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := st.AddItem("work", "review", day(1)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := st.AddItem("personal", "gym", time.Time{}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := st.AddReference("everything", "work"); err != nil {
		t.Fatalf("AddReference: %v", err)
	}
	if err := st.AddReference("everything", "personal"); err != nil {
		t.Fatalf("AddReference: %v", err)
	}

	// Nothing is due today yet.
	if n, _ := st.Count("everything", DueToday(now)); n != 0 {
		t.Errorf("expected nothing due today, got %d", n)
	}

	// Prefix resolution works through the aggregate view.
	items, err := st.EffectiveItems("ev")
	if err != nil {
		t.Fatalf("EffectiveItems: %v", err)
	}
	want := []string{"email", "review", "gym"}
	if got := itemNames(items); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Finish the gym session and prune it.
	if err := st.Done("pers", "gym", now); err != nil {
		t.Fatalf("Done: %v", err)
	}
	removed, err := st.AutoRemove("personal")
	if err != nil {
		t.Fatalf("AutoRemove: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}

	items, err = st.EffectiveItems("everything")
	if err != nil {
		t.Fatalf("EffectiveItems: %v", err)
	}
	if got := itemNames(items); !reflect.DeepEqual(got, []string{"email", "review"}) {
		t.Errorf("expected [email review], got %v", got)
	}

	if !st.Modified() {
		t.Error("expected the session to mark the store modified")
	}
}
