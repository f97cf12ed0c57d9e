package store

import (
	"fmt"
	"strings"
	"time"
)

// Store is the canonical, ordered collection of lists for one command
// invocation. All mutations go through its methods, which validate against
// the full invariant set before writing anything, so a failed operation
// leaves the store exactly as it was.
type Store struct {
	lists    []*List
	modified bool
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// FromLists builds a store from a loaded document, validating that it
// satisfies the store invariants: unique list names, unique item names
// within each list, no dangling references, and no reference cycles.
func FromLists(lists []*List) (*Store, error) {
	s := &Store{lists: lists}
	seen := make(map[string]bool, len(lists))
	for _, l := range lists {
		if seen[l.Name] {
			return nil, fmt.Errorf("list %q: %w", l.Name, ErrDuplicateName)
		}
		seen[l.Name] = true
		items := make(map[string]bool, len(l.Items))
		for _, it := range l.Items {
			if items[it.Name] {
				return nil, fmt.Errorf("item %q in list %q: %w", it.Name, l.Name, ErrDuplicateName)
			}
			items[it.Name] = true
		}
	}
	for _, l := range lists {
		for _, r := range l.Refs {
			if !seen[r] {
				return nil, fmt.Errorf("list %q references missing list %q: %w", l.Name, r, ErrNotFound)
			}
		}
	}
	for _, l := range lists {
		if s.reachable(l.Name, l.Name) {
			return nil, fmt.Errorf("list %q: %w", l.Name, ErrCycle)
		}
	}
	return s, nil
}

// Lists returns the lists in document order. The slice and its contents are
// shared with the store; callers must not mutate them.
func (s *Store) Lists() []*List {
	return s.lists
}

// Names returns all list names in document order.
func (s *Store) Names() []string {
	names := make([]string, len(s.lists))
	for i, l := range s.lists {
		names[i] = l.Name
	}
	return names
}

// Modified reports whether any mutation succeeded since the store was built.
func (s *Store) Modified() bool {
	return s.modified
}

// Snapshot returns a deep copy of the store's lists, for tests and for
// callers that need a before-image.
func (s *Store) Snapshot() []*List {
	out := make([]*List, len(s.lists))
	for i, l := range s.lists {
		out[i] = l.clone()
	}
	return out
}

// get finds a list by its exact name.
func (s *Store) get(name string) (*List, bool) {
	for _, l := range s.lists {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Resolve finds a list by name, allowing a unique prefix. An exact match
// always wins; otherwise the prefix must match exactly one list.
func (s *Store) Resolve(name string) (*List, error) {
	var match *List
	for _, l := range s.lists {
		if l.Name == name {
			return l, nil
		}
		if name != "" && strings.HasPrefix(l.Name, name) {
			if match != nil {
				return nil, fmt.Errorf("list %q: %w", name, ErrAmbiguous)
			}
			match = l
		}
	}
	if match == nil {
		return nil, fmt.Errorf("list %q: %w", name, ErrNotFound)
	}
	return match, nil
}

// resolveItem finds an item in the list's own items by name, allowing a
// unique prefix with the same exact-match-wins rule as Resolve.
func (l *List) resolveItem(name string) (int, error) {
	match := -1
	for i, it := range l.Items {
		if it.Name == name {
			return i, nil
		}
		if name != "" && strings.HasPrefix(it.Name, name) {
			if match >= 0 {
				return -1, fmt.Errorf("item %q in list %q: %w", name, l.Name, ErrAmbiguous)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("item %q in list %q: %w", name, l.Name, ErrNotFound)
	}
	return match, nil
}

// CreateList creates a new, empty list with the exact given name.
func (s *Store) CreateList(name string) error {
	if _, ok := s.get(name); ok {
		return fmt.Errorf("list %q: %w", name, ErrDuplicateName)
	}
	s.lists = append(s.lists, &List{Name: name})
	s.modified = true
	return nil
}

// DeleteList removes a list. Without force it fails while other lists still
// reference the target; with force all inbound references are removed too,
// so no dangling reference is ever left behind.
func (s *Store) DeleteList(name string, force bool) error {
	l, err := s.Resolve(name)
	if err != nil {
		return err
	}
	if !force {
		for _, other := range s.lists {
			if other != l && other.hasRef(l.Name) {
				return fmt.Errorf("list %q: %w (by %q)", l.Name, ErrReferenced, other.Name)
			}
		}
	}
	kept := s.lists[:0]
	for _, other := range s.lists {
		if other == l {
			continue
		}
		if force {
			refs := other.Refs[:0]
			for _, r := range other.Refs {
				if r != l.Name {
					refs = append(refs, r)
				}
			}
			other.Refs = refs
		}
		kept = append(kept, other)
	}
	s.lists = kept
	s.modified = true
	return nil
}

// RenameList renames a list and rewrites every reference pointing at it, so
// identity is preserved across the rename.
func (s *Store) RenameList(old, newName string) error {
	l, err := s.Resolve(old)
	if err != nil {
		return err
	}
	if other, ok := s.get(newName); ok && other != l {
		return fmt.Errorf("list %q: %w", newName, ErrDuplicateName)
	}
	prev := l.Name
	l.Name = newName
	for _, other := range s.lists {
		for i, r := range other.Refs {
			if r == prev {
				other.Refs[i] = newName
			}
		}
	}
	s.modified = true
	return nil
}

// AddItem appends a new item to a list's own items. A zero due time means
// no deadline.
func (s *Store) AddItem(list, name string, due time.Time) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	if l.hasItem(name) {
		return fmt.Errorf("item %q in list %q: %w", name, l.Name, ErrDuplicateName)
	}
	l.Items = append(l.Items, &Item{Name: name, Due: due})
	s.modified = true
	return nil
}

// RemoveItem removes an item from a list's own items.
func (s *Store) RemoveItem(list, item string) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	idx, err := l.resolveItem(item)
	if err != nil {
		return err
	}
	l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
	s.modified = true
	return nil
}

// RenameItem renames an item within a list's own items.
func (s *Store) RenameItem(list, old, newName string) error {
	l, err := s.Resolve(list)
	if err != nil {
		return err
	}
	idx, err := l.resolveItem(old)
	if err != nil {
		return err
	}
	if l.Items[idx].Name != newName && l.hasItem(newName) {
		return fmt.Errorf("item %q in list %q: %w", newName, l.Name, ErrDuplicateName)
	}
	l.Items[idx].Name = newName
	s.modified = true
	return nil
}
