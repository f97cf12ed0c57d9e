package output

import (
	"bytes"
	"testing"
	"time"

	"todo/internal/store"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestRenderOutline_DatesAligned(t *testing.T) {
	o := &store.Outline{
		Name: "work",
		Items: []*store.Item{
			{Name: "email", Due: now.AddDate(0, 0, 1)},
			{Name: "expense report", Done: true, Due: now.AddDate(0, 0, -2)},
			{Name: "review"},
		},
	}

	var buf bytes.Buffer
	RenderOutline(&buf, o, now, true)

	expected := " work:\n" +
		"     email         \t29/08/2026 (in 1 day)\n" +
		"✓    expense report\t26/08/2026 (2 days ago)\n" +
		"     review\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestRenderOutline_EmptySubtreeIsSkipped(t *testing.T) {
	o := &store.Outline{Name: "work"}

	var buf bytes.Buffer
	RenderOutline(&buf, o, now, true)

	if buf.String() != "" {
		t.Errorf("expected no output for an empty outline, got %q", buf.String())
	}
}

func TestRenderOutline_NestedIndent(t *testing.T) {
	o := &store.Outline{
		Name:  "all",
		Items: []*store.Item{{Name: "own"}},
		Children: []*store.Outline{
			{
				Name:    "chores",
				Items:   []*store.Item{{Name: "bins", Done: true}},
				AllDone: true,
			},
		},
	}

	var buf bytes.Buffer
	RenderOutline(&buf, o, now, false)

	expected := " all:\n" +
		"     own\n" +
		"     chores:\n" +
		"✓        bins\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestRelativeDays(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{offset: 0, want: "in 0 days"},
		{offset: 1, want: "in 1 day"},
		{offset: 5, want: "in 5 days"},
		{offset: -1, want: "1 day ago"},
		{offset: -10, want: "10 days ago"},
	}
	for _, tt := range tests {
		if got := relativeDays(now.AddDate(0, 0, tt.offset), now); got != tt.want {
			t.Errorf("relativeDays(%+d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestFormatDeadlineCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: ""},
		{n: 1, want: "You have 1 deadline today\n"},
		{n: 3, want: "You have 3 deadlines today\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		FormatDeadlineCount(&buf, tt.n, "today")
		if buf.String() != tt.want {
			t.Errorf("n=%d: got %q, want %q", tt.n, buf.String(), tt.want)
		}
	}
}
