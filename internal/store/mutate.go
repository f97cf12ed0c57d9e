package store

import (
	"fmt"
	"time"
)

// Done marks an item in the list's own items as done. Repeating items get
// their next roll scheduled from now.
func (s *Store) Done(list, item string, now time.Time) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	idx, err := l.resolveItem(item)
	if err != nil {
		return err
	}
	l.Items[idx].markDone(now)
	s.modified = true
	return nil
}

// Undone marks an item in the list's own items as not done.
func (s *Store) Undone(list, item string) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	idx, err := l.resolveItem(item)
	if err != nil {
		return err
	}
	l.Items[idx].Done = false
	s.modified = true
	return nil
}

// DoneAll marks every own item of the list as done. Items contributed
// through references are untouched.
func (s *Store) DoneAll(list string, now time.Time) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	for _, it := range l.Items {
		it.markDone(now)
	}
	s.modified = true
	return nil
}

// UndoneAll marks every own item of the list as not done.
func (s *Store) UndoneAll(list string) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	for _, it := range l.Items {
		it.Done = false
	}
	s.modified = true
	return nil
}

// Move removes an item from src's own items and appends it to dest. Both
// lists and the item are validated before anything is written.
func (s *Store) Move(src, item, dest string) error {
	from, err := s.Resolve(src)
	if err != nil {
		return err
	}
	to, err := s.Resolve(dest)
	if err != nil {
		return err
	}
	idx, err := from.resolveItem(item)
	if err != nil {
		return err
	}
	moved := from.Items[idx]
	if from != to && to.hasItem(moved.Name) {
		return fmt.Errorf("item %q in list %q: %w", moved.Name, to.Name, ErrDuplicateName)
	}
	from.Items = append(from.Items[:idx], from.Items[idx+1:]...)
	to.Items = append(to.Items, moved)
	s.modified = true
	return nil
}

// MoveAll moves every own item of src into dest, leaving src's own items
// empty. src's references are untouched: items contributed through them are
// never moved. Fails without mutating if src and dest are the same list or
// if any moved name would collide in dest.
func (s *Store) MoveAll(src, dest string) error {
	from, err := s.Resolve(src)
	if err != nil {
		return err
	}
	to, err := s.Resolve(dest)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("list %q: cannot move a list into itself", from.Name)
	}
	for _, it := range from.Items {
		if to.hasItem(it.Name) {
			return fmt.Errorf("item %q in list %q: %w", it.Name, to.Name, ErrDuplicateName)
		}
	}
	to.Items = append(to.Items, from.Items...)
	from.Items = nil
	s.modified = true
	return nil
}

// AutoRemove deletes every own item of the list that is marked done and
// returns how many were removed. Referenced lists are never pruned.
func (s *Store) AutoRemove(list string) (int, error) {
	l, err := s.Resolve(list)
	if err != nil {
		return 0, err
	}
	kept := l.Items[:0]
	removed := 0
	for _, it := range l.Items {
		if it.Done {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.Items = kept
	if removed > 0 {
		s.modified = true
	}
	return removed, nil
}

// Repeat sets an item's repeat interval in days. An interval of 0 clears it.
// If the item is already done, the next roll is scheduled from now.
func (s *Store) Repeat(list, item string, everyDays int, now time.Time) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	idx, err := l.resolveItem(item)
	if err != nil {
		return err
	}
	it := l.Items[idx]
	it.RepeatEvery = everyDays
	if everyDays == 0 {
		it.RepeatNext = 0
	} else if it.Done {
		it.RepeatNext = DayNumber(now) + everyDays
	}
	s.modified = true
	return nil
}

// Tick performs the daily-roll check for one item: a done item whose repeat
// day has arrived flips back to not-done.
func (s *Store) Tick(list, item string, now time.Time) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	idx, err := l.resolveItem(item)
	if err != nil {
		return err
	}
	if l.Items[idx].tick(now) {
		s.modified = true
	}
	return nil
}

// TickAll runs the daily-roll check over every item in the store and
// returns how many items rolled back to not-done.
func (s *Store) TickAll(now time.Time) int {
	rolled := 0
	for _, l := range s.lists {
		for _, it := range l.Items {
			if it.tick(now) {
				rolled++
			}
		}
	}
	if rolled > 0 {
		s.modified = true
	}
	return rolled
}
