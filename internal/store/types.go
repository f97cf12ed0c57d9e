// Package store owns the canonical collection of lists and items, the
// reference graph between lists, and every mutation and query defined on
// them. It is pure in-memory state: persistence is handled by the backends,
// which hand a fully built Store to the dispatcher and receive it back after
// a mutating command.
package store

import "time"

// Item is a single task inside a list's own items.
type Item struct {
	Name string
	Done bool

	// Due is the optional deadline. The zero time means no deadline.
	Due time.Time

	// Priority is a display-order tie-break. 0 means unset.
	Priority int

	// RepeatEvery is the repeat interval in days. 0 means no repeat.
	RepeatEvery int

	// RepeatNext is the epoch day on which a done repeating item flips back
	// to not-done. Set whenever the item is marked done with a repeat
	// interval present.
	RepeatNext int
}

// HasDue reports whether the item carries a deadline.
func (it *Item) HasDue() bool {
	return !it.Due.IsZero()
}

// tick performs the daily-roll check for this item: a done item with a
// repeat interval becomes not-done once its repeat day has arrived.
// Returns true if the item changed.
func (it *Item) tick(now time.Time) bool {
	if !it.Done || it.RepeatEvery == 0 {
		return false
	}
	if DayNumber(now) < it.RepeatNext {
		return false
	}
	it.Done = false
	return true
}

// markDone sets done and, for repeating items, schedules the next roll.
func (it *Item) markDone(now time.Time) {
	it.Done = true
	if it.RepeatEvery != 0 {
		it.RepeatNext = DayNumber(now) + it.RepeatEvery
	}
}

// List is a named, ordered collection of items plus ordered references to
// other lists. References are weak, name-keyed links into the owning Store,
// never pointers; Refs always holds canonical (fully spelled) list names.
type List struct {
	Name  string
	Items []*Item
	Refs  []string
}

// clone returns a deep copy of the list.
func (l *List) clone() *List {
	c := &List{Name: l.Name}
	for _, it := range l.Items {
		dup := *it
		c.Items = append(c.Items, &dup)
	}
	c.Refs = append(c.Refs, l.Refs...)
	return c
}

// hasItem reports whether the list's own items contain an exact name.
func (l *List) hasItem(name string) bool {
	for _, it := range l.Items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// hasRef reports whether name is in the list's references.
func (l *List) hasRef(name string) bool {
	for _, r := range l.Refs {
		if r == name {
			return true
		}
	}
	return false
}
