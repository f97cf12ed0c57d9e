package store

import "time"

// Predicate filters items during queries and outline rendering.
type Predicate func(*Item) bool

// All matches every item.
func All(*Item) bool { return true }

// Open matches items not marked done.
func Open(it *Item) bool { return !it.Done }

// DueToday matches items whose deadline is now's calendar date.
func DueToday(now time.Time) Predicate {
	today := DayNumber(now)
	return func(it *Item) bool {
		return it.HasDue() && DayNumber(it.Due) == today
	}
}

// DueThisWeek matches items due between now's date and six days after it,
// inclusive.
func DueThisWeek(now time.Time) Predicate {
	today := DayNumber(now)
	return func(it *Item) bool {
		if !it.HasDue() {
			return false
		}
		d := DayNumber(it.Due)
		return d >= today && d <= today+6
	}
}

// Overdue matches open items whose deadline has passed.
func Overdue(now time.Time) Predicate {
	today := DayNumber(now)
	return func(it *Item) bool {
		return it.HasDue() && !it.Done && DayNumber(it.Due) < today
	}
}

// Filter returns the list's effective items that satisfy pred, in effective
// order: own items first, then each reference in declared order. No further
// sort is applied.
func (s *Store) Filter(list string, pred Predicate) ([]*Item, error) {
	l, err := s.Resolve(list)
	if err != nil {
		return nil, err
	}
	var out []*Item
	visited := make(map[string]bool)
	s.walkEffective(l, visited, func(_ *List, it *Item) {
		if pred(it) {
			out = append(out, it)
		}
	})
	return out, nil
}

// Count returns how many effective items satisfy pred, for the count-only
// short mode.
func (s *Store) Count(list string, pred Predicate) (int, error) {
	items, err := s.Filter(list, pred)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
