package store

import "fmt"

// AddReference appends src to dest's references. Before mutating it checks
// that dest is not reachable from src (and src != dest): adding such an edge
// would close a cycle, so the operation fails without touching the store.
func (s *Store) AddReference(dest, src string) error {
	d, err := s.Resolve(dest)
	if err != nil {
		return err
	}
	sl, err := s.Resolve(src)
	if err != nil {
		return err
	}
	if d.hasRef(sl.Name) {
		return fmt.Errorf("reference %q in list %q: %w", sl.Name, d.Name, ErrDuplicateName)
	}
	if d == sl || s.reachable(sl.Name, d.Name) {
		return fmt.Errorf("list %q into %q: %w", sl.Name, d.Name, ErrCycle)
	}
	d.Refs = append(d.Refs, sl.Name)
	s.modified = true
	return nil
}

// RemoveReference removes src from dest's references.
func (s *Store) RemoveReference(dest, src string) error {
	d, err := s.Resolve(dest)
	if err != nil {
		return err
	}
	sl, err := s.Resolve(src)
	if err != nil {
		return err
	}
	for i, r := range d.Refs {
		if r == sl.Name {
			d.Refs = append(d.Refs[:i], d.Refs[i+1:]...)
			s.modified = true
			return nil
		}
	}
	return fmt.Errorf("reference %q in list %q: %w", sl.Name, d.Name, ErrNotFound)
}

// reachable reports whether target can be reached from the list named from
// by following reference edges. Depth-first with a visited set keyed by list
// name, so it terminates even if the graph were cyclic elsewhere.
func (s *Store) reachable(from, target string) bool {
	visited := make(map[string]bool)
	var walk func(name string) bool
	walk = func(name string) bool {
		if visited[name] {
			return false
		}
		visited[name] = true
		l, ok := s.get(name)
		if !ok {
			return false
		}
		for _, r := range l.Refs {
			if r == target || walk(r) {
				return true
			}
		}
		return false
	}
	return walk(from)
}

// EffectiveItems returns every item reachable from the list: its own items
// first, then for each reference in order that list's effective items,
// recursively. Each referenced list contributes exactly once no matter how
// many reference paths lead to it.
func (s *Store) EffectiveItems(name string) ([]*Item, error) {
	l, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	var out []*Item
	visited := make(map[string]bool)
	s.walkEffective(l, visited, func(_ *List, it *Item) {
		out = append(out, it)
	})
	return out, nil
}

// walkEffective visits every effective item of l in order, calling fn with
// the owning list. The visited set deduplicates by list identity.
func (s *Store) walkEffective(l *List, visited map[string]bool, fn func(owner *List, it *Item)) {
	if visited[l.Name] {
		return
	}
	visited[l.Name] = true
	for _, it := range l.Items {
		fn(l, it)
	}
	for _, r := range l.Refs {
		if ref, ok := s.get(r); ok {
			s.walkEffective(ref, visited, fn)
		}
	}
}
