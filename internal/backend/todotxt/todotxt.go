// Package todotxt persists the document as a plain text file.
//
// The format is line-based. A list starts with an unindented "name:" header;
// every indented line below it is one entry of that list:
//
//	work:
//		- @01/09/2026 email
//		+ !2 expense report
//		= personal
//
// "-" opens an item, "+" a done item, "=" a reference to another list.
// Between the marker and the name an item may carry a due date (@dd/mm/yyyy),
// a priority (!N) and a repeat marker (~every or ~every:next, both in days).
package todotxt

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"todo/internal/store"
)

// Backend reads and writes the text document at Path.
type Backend struct {
	Path string
}

// New returns a text backend for the given file path.
func New(path string) *Backend {
	return &Backend{Path: path}
}

// Load parses the document. A missing file is an empty document.
func (b *Backend) Load(ctx context.Context) (*store.Store, error) {
	f, err := os.Open(b.Path)
	if os.IsNotExist(err) {
		return store.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", b.Path, err)
	}
	defer f.Close()

	var lists []*store.List
	var current *store.List
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if current == nil {
				return nil, corrupt(lineNum, "entry before any list header")
			}
			if err := parseEntry(current, strings.TrimSpace(line), lineNum); err != nil {
				return nil, err
			}
			continue
		}
		name := strings.TrimRight(line, " \t")
		if !strings.HasSuffix(name, ":") {
			return nil, corrupt(lineNum, "expected ':' at end of list header")
		}
		current = &store.List{Name: strings.TrimSuffix(name, ":")}
		lists = append(lists, current)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", b.Path, err)
	}

	st, err := store.FromLists(lists)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}
	return st, nil
}

func parseEntry(l *store.List, line string, lineNum int) error {
	marker, rest, ok := strings.Cut(line, " ")
	if !ok {
		rest = ""
	}
	switch marker {
	case "=":
		l.Refs = append(l.Refs, rest)
		return nil
	case "-", "+":
		it, err := parseItem(rest, lineNum)
		if err != nil {
			return err
		}
		it.Done = marker == "+"
		l.Items = append(l.Items, it)
		return nil
	default:
		return corrupt(lineNum, fmt.Sprintf("expected '-', '+' or '=' at start of entry, found %q", marker))
	}
}

func parseItem(rest string, lineNum int) (*store.Item, error) {
	it := &store.Item{}
	for {
		switch {
		case strings.HasPrefix(rest, "@"):
			if len(rest) < 11 {
				return nil, corrupt(lineNum, "invalid date literal")
			}
			due, err := time.Parse(store.DateFormat, rest[1:11])
			if err != nil {
				return nil, corrupt(lineNum, "invalid date literal")
			}
			it.Due = due
			rest = strings.TrimPrefix(rest[11:], " ")
		case strings.HasPrefix(rest, "!"):
			tok, tail, _ := strings.Cut(rest[1:], " ")
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, corrupt(lineNum, "invalid priority")
			}
			it.Priority = n
			rest = tail
		case strings.HasPrefix(rest, "~"):
			tok, tail, _ := strings.Cut(rest[1:], " ")
			every, next, hasNext := strings.Cut(tok, ":")
			n, err := strconv.Atoi(every)
			if err != nil {
				return nil, corrupt(lineNum, "invalid repeat interval")
			}
			it.RepeatEvery = n
			if hasNext {
				m, err := strconv.Atoi(next)
				if err != nil {
					return nil, corrupt(lineNum, "invalid repeat interval")
				}
				it.RepeatNext = m
			}
			rest = tail
		default:
			it.Name = rest
			return it, nil
		}
	}
}

// Save writes the full document to a temp file, then replaces the target in
// one rename.
func (b *Backend) Save(ctx context.Context, st *store.Store) error {
	var sb strings.Builder
	for _, l := range st.Lists() {
		sb.WriteString(l.Name)
		sb.WriteString(":\n")
		for _, it := range l.Items {
			sb.WriteString("\t")
			if it.Done {
				sb.WriteString("+")
			} else {
				sb.WriteString("-")
			}
			if it.HasDue() {
				sb.WriteString(" @")
				sb.WriteString(it.Due.Format(store.DateFormat))
			}
			if it.Priority != 0 {
				fmt.Fprintf(&sb, " !%d", it.Priority)
			}
			if it.RepeatEvery != 0 {
				if it.RepeatNext != 0 {
					fmt.Fprintf(&sb, " ~%d:%d", it.RepeatEvery, it.RepeatNext)
				} else {
					fmt.Fprintf(&sb, " ~%d", it.RepeatEvery)
				}
			}
			sb.WriteString(" ")
			sb.WriteString(it.Name)
			sb.WriteString("\n")
		}
		for _, r := range l.Refs {
			sb.WriteString("\t= ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.Path), ".todo-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	if _, err := tmp.WriteString(sb.String()); err != nil {
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

func corrupt(line int, msg string) error {
	return fmt.Errorf("line %d: %w: %s", line, store.ErrCorrupt, msg)
}
