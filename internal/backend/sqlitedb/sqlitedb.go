// Package sqlitedb persists the document in a SQLite database using the
// pure-Go modernc.org/sqlite driver. The whole document is loaded at the
// start of a command; Save replaces every row inside a single transaction,
// so an interrupted write never leaves partial state.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"todo/internal/store"
)

const dateLayout = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS lists (
    id       INTEGER PRIMARY KEY,
    position INTEGER NOT NULL,
    name     TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS entries (
    id           INTEGER PRIMARY KEY,
    list_id      INTEGER NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
    position     INTEGER NOT NULL,
    kind         TEXT NOT NULL CHECK (kind IN ('item', 'ref')),
    name         TEXT NOT NULL,
    done         INTEGER NOT NULL DEFAULT 0,
    due          TEXT,
    priority     INTEGER NOT NULL DEFAULT 0,
    repeat_every INTEGER NOT NULL DEFAULT 0,
    repeat_next  INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_entries_list ON entries(list_id, position);
`

// Backend reads and writes the SQLite database at Path.
type Backend struct {
	Path string
}

// New returns a SQLite backend for the given database path.
func New(path string) *Backend {
	return &Backend{Path: path}
}

func (b *Backend) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", b.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", b.Path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}
	return db, nil
}

// Load reads the whole document. A fresh database is an empty document.
func (b *Backend) Load(ctx context.Context) (*store.Store, error) {
	db, err := b.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, name FROM lists ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}
	defer rows.Close()

	var lists []*store.List
	byID := make(map[int64]*store.List)
	var order []int64
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
		}
		l := &store.List{Name: name}
		lists = append(lists, l)
		byID[id] = l
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}

	for _, id := range order {
		l := byID[id]
		if err := b.loadEntries(ctx, db, id, l); err != nil {
			return nil, err
		}
	}

	st, err := store.FromLists(lists)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}
	return st, nil
}

func (b *Backend) loadEntries(ctx context.Context, db *sql.DB, listID int64, l *store.List) error {
	rows, err := db.QueryContext(ctx, `
		SELECT kind, name, done, due, priority, repeat_every, repeat_next
		FROM entries WHERE list_id = ? ORDER BY position`, listID)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, name string
		var done int
		var due sql.NullString
		var priority, repeatEvery, repeatNext int
		if err := rows.Scan(&kind, &name, &done, &due, &priority, &repeatEvery, &repeatNext); err != nil {
			return fmt.Errorf("%s: %w: %v", b.Path, store.ErrCorrupt, err)
		}
		switch kind {
		case "ref":
			l.Refs = append(l.Refs, name)
		case "item":
			it := &store.Item{
				Name:        name,
				Done:        done != 0,
				Priority:    priority,
				RepeatEvery: repeatEvery,
				RepeatNext:  repeatNext,
			}
			if due.Valid && due.String != "" {
				t, err := time.Parse(dateLayout, due.String)
				if err != nil {
					return fmt.Errorf("%s: %w: bad date %q", b.Path, store.ErrCorrupt, due.String)
				}
				it.Due = t
			}
			l.Items = append(l.Items, it)
		default:
			return fmt.Errorf("%s: %w: entry kind %q", b.Path, store.ErrCorrupt, kind)
		}
	}
	return rows.Err()
}

// Save replaces the whole document inside one transaction.
func (b *Backend) Save(ctx context.Context, st *store.Store) error {
	db, err := b.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lists`); err != nil {
		return fmt.Errorf("write %s: %w", b.Path, err)
	}

	for pos, l := range st.Lists() {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO lists (position, name) VALUES (?, ?)`, pos, l.Name)
		if err != nil {
			return fmt.Errorf("write %s: %w", b.Path, err)
		}
		listID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("write %s: %w", b.Path, err)
		}
		entryPos := 0
		for _, it := range l.Items {
			var due any
			if it.HasDue() {
				due = it.Due.Format(dateLayout)
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO entries (list_id, position, kind, name, done, due, priority, repeat_every, repeat_next)
				VALUES (?, ?, 'item', ?, ?, ?, ?, ?, ?)`,
				listID, entryPos, it.Name, boolInt(it.Done), due, it.Priority, it.RepeatEvery, it.RepeatNext)
			if err != nil {
				return fmt.Errorf("write %s: %w", b.Path, err)
			}
			entryPos++
		}
		for _, r := range l.Refs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO entries (list_id, position, kind, name)
				VALUES (?, ?, 'ref', ?)`, listID, entryPos, r)
			if err != nil {
				return fmt.Errorf("write %s: %w", b.Path, err)
			}
			entryPos++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
