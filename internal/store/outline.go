package store

// Outline is a printable view of a list: its own items passing a predicate
// plus an outline for each referenced list. Diamond-shaped reference graphs
// are collapsed, so a list reached through two paths appears once.
type Outline struct {
	Name     string
	Items    []*Item
	Children []*Outline

	// AllDone is true when nothing in the subtree is still open.
	AllDone bool
}

// Total returns the number of items in the outline, children included.
func (o *Outline) Total() int {
	n := len(o.Items)
	for _, c := range o.Children {
		n += c.Total()
	}
	return n
}

// Outline builds the printable tree for a list, keeping only items that
// satisfy pred.
func (s *Store) Outline(list string, pred Predicate) (*Outline, error) {
	l, err := s.Resolve(list)
	if err != nil {
		return nil, err
	}
	visited := make(map[string]bool)
	return s.buildOutline(l, pred, visited), nil
}

func (s *Store) buildOutline(l *List, pred Predicate, visited map[string]bool) *Outline {
	visited[l.Name] = true
	node := &Outline{Name: l.Name, AllDone: true}
	for _, it := range l.Items {
		if !it.Done {
			node.AllDone = false
		}
		if pred(it) {
			node.Items = append(node.Items, it)
		}
	}
	for _, r := range l.Refs {
		ref, ok := s.get(r)
		if !ok || visited[r] {
			continue
		}
		child := s.buildOutline(ref, pred, visited)
		if !child.AllDone {
			node.AllDone = false
		}
		node.Children = append(node.Children, child)
	}
	return node
}
