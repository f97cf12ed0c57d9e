// Package yamlfile persists the document as a YAML sequence of lists, each
// holding its entries in order. Items and list references share the entry
// sequence, tagged by type.
package yamlfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"todo/internal/store"
)

const dateLayout = "2006-01-02"

type entryDoc struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Done        bool   `yaml:"done,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Priority    int    `yaml:"priority,omitempty"`
	RepeatEvery int    `yaml:"repeat_every,omitempty"`
	RepeatNext  int    `yaml:"repeat_next,omitempty"`
}

type listDoc struct {
	Name    string     `yaml:"name"`
	Entries []entryDoc `yaml:"entries"`
}

// Backend reads and writes the YAML document at Path.
type Backend struct {
	Path string
}

// New returns a YAML backend for the given file path.
func New(path string) *Backend {
	return &Backend{Path: path}
}

// Load parses the document. A missing file is an empty document.
func (b *Backend) Load(ctx context.Context) (*store.Store, error) {
	data, err := os.ReadFile(b.Path)
	if os.IsNotExist(err) {
		return store.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.Path, err)
	}

	var doc []listDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}

	lists := make([]*store.List, 0, len(doc))
	for _, ld := range doc {
		l := &store.List{Name: ld.Name}
		for _, e := range ld.Entries {
			switch e.Type {
			case "list":
				l.Refs = append(l.Refs, e.Name)
			case "item":
				it := &store.Item{
					Name:        e.Name,
					Done:        e.Done,
					Priority:    e.Priority,
					RepeatEvery: e.RepeatEvery,
					RepeatNext:  e.RepeatNext,
				}
				if e.Date != "" {
					due, err := time.Parse(dateLayout, e.Date)
					if err != nil {
						return nil, fmt.Errorf("%s: %w: bad date %q", b.Path, store.ErrCorrupt, e.Date)
					}
					it.Due = due
				}
				l.Items = append(l.Items, it)
			default:
				return nil, fmt.Errorf("%s: %w: entry type %q", b.Path, store.ErrCorrupt, e.Type)
			}
		}
		lists = append(lists, l)
	}

	st, err := store.FromLists(lists)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}
	return st, nil
}

// Save writes the full document to a temp file, then replaces the target in
// one rename.
func (b *Backend) Save(ctx context.Context, st *store.Store) error {
	doc := make([]listDoc, 0, len(st.Lists()))
	for _, l := range st.Lists() {
		ld := listDoc{Name: l.Name, Entries: []entryDoc{}}
		for _, it := range l.Items {
			e := entryDoc{
				Type:        "item",
				Name:        it.Name,
				Done:        it.Done,
				Priority:    it.Priority,
				RepeatEvery: it.RepeatEvery,
				RepeatNext:  it.RepeatNext,
			}
			if it.HasDue() {
				e.Date = it.Due.Format(dateLayout)
			}
			ld.Entries = append(ld.Entries, e)
		}
		for _, r := range l.Refs {
			ld.Entries = append(ld.Entries, entryDoc{Type: "list", Name: r})
		}
		doc = append(doc, ld)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", b.Path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.Path), ".todo-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	return nil
}
