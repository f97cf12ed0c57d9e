// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"todo/internal/store"
)

const indentWidth = 4

// RenderOutline writes a list outline: a header per list, one line per item,
// referenced lists indented one level deeper. Done items and fully done
// lists get a leading check mark. When withDates is set, items with a
// deadline get an aligned date column with a relative time. Lists with no
// matching items produce no output at all.
func RenderOutline(w io.Writer, o *store.Outline, now time.Time, withDates bool) {
	if o.Total() == 0 {
		return
	}
	max := maxWidth(o, 0)
	renderNode(w, o, 0, max, now, withDates)
}

func renderNode(w io.Writer, o *store.Outline, depth, max int, now time.Time, withDates bool) {
	if o.Total() == 0 {
		return
	}
	fmt.Fprintf(w, "%s%s%s:\n", mark(o.AllDone), strings.Repeat(" ", depth*indentWidth), o.Name)

	indent := strings.Repeat(" ", (depth+1)*indentWidth)
	for _, it := range o.Items {
		if withDates && it.HasDue() {
			pad := strings.Repeat(" ", max-len(indent)-len(it.Name))
			fmt.Fprintf(w, "%s%s%s%s\t%s (%s)\n",
				mark(it.Done), indent, it.Name, pad,
				it.Due.Format(store.DateFormat), relativeDays(it.Due, now))
		} else {
			fmt.Fprintf(w, "%s%s%s\n", mark(it.Done), indent, it.Name)
		}
	}
	for _, c := range o.Children {
		renderNode(w, c, depth+1, max, now, withDates)
	}
}

// maxWidth returns the widest indented name in the outline, used to align
// the date column.
func maxWidth(o *store.Outline, depth int) int {
	max := depth*indentWidth + len(o.Name) + 1
	for _, it := range o.Items {
		if n := (depth+1)*indentWidth + len(it.Name); n > max {
			max = n
		}
	}
	for _, c := range o.Children {
		if n := maxWidth(c, depth+1); n > max {
			max = n
		}
	}
	return max
}

func mark(done bool) string {
	if done {
		return "✓"
	}
	return " "
}

// relativeDays phrases the distance from now's date to due's.
func relativeDays(due, now time.Time) string {
	days := store.DaysUntil(due, now)
	switch {
	case days == 1:
		return "in 1 day"
	case days == -1:
		return "1 day ago"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// FormatListNames writes one list name per line.
func FormatListNames(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// FormatDeadlineCount writes the short-mode summary line. Nothing is
// printed when the count is zero.
func FormatDeadlineCount(w io.Writer, n int, description string) {
	if n == 0 {
		return
	}
	plural := "s"
	if n == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "You have %d deadline%s %s\n", n, plural, description)
}
