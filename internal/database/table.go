package database

import (
	"context"

	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// Row is satisfied by pointers to record types embedding model.Base.
type Row[T any] interface {
	*T
	Meta() *model.Base
}

// Table is an ordered collection of records of one type. Rows are stored by
// value; every read hands back copies so callers cannot mutate the store.
type Table[T any, P Row[T]] struct {
	db   *DB
	name string
	rows []T
}

func newTable[T any, P Row[T]](db *DB, name string) *Table[T, P] {
	return &Table[T, P]{db: db, name: name}
}

// Name returns the collection name.
func (t *Table[T, P]) Name() string {
	return t.name
}

// Insert stamps a fresh id and timestamps onto row, appends it and returns the stored copy.
func (t *Table[T, P]) Insert(ctx context.Context, row T) (T, error) {
	err := t.db.write(ctx, func(tx *txn) error {
		now := t.db.now()
		meta := P(&row).Meta()
		meta.ID = t.db.newID()
		meta.CreatedAt = now
		meta.UpdatedAt = now
		t.rows = append(t.rows, row)

		if tx != nil {
			id := meta.ID
			tx.undo = append(tx.undo, func() {
				if i := t.indexOf(id); i >= 0 {
					t.rows = append(t.rows[:i], t.rows[i+1:]...)
				}
			})
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return row, nil
}

// All returns every record in insertion order.
func (t *Table[T, P]) All(ctx context.Context) ([]T, error) {
	var out []T
	err := t.db.read(ctx, func() {
		out = make([]T, len(t.rows))
		copy(out, t.rows)
	})
	return out, err
}

// FindByID returns the record with the given id or ErrRecordNotFound.
func (t *Table[T, P]) FindByID(ctx context.Context, id string) (T, error) {
	var (
		out   T
		found bool
	)
	err := t.db.read(ctx, func() {
		if i := t.indexOf(id); i >= 0 {
			out, found = t.rows[i], true
		}
	})
	if err != nil {
		return out, err
	}
	if !found {
		return out, ErrRecordNotFound
	}
	return out, nil
}

// First returns the first record matching pred or ErrRecordNotFound.
func (t *Table[T, P]) First(ctx context.Context, pred func(T) bool) (T, error) {
	var (
		out   T
		found bool
	)
	err := t.db.read(ctx, func() {
		for _, row := range t.rows {
			if pred(row) {
				out, found = row, true
				return
			}
		}
	})
	if err != nil {
		return out, err
	}
	if !found {
		return out, ErrRecordNotFound
	}
	return out, nil
}

// Filter returns the records satisfying pred, in insertion order.
func (t *Table[T, P]) Filter(ctx context.Context, pred func(T) bool) ([]T, error) {
	out := make([]T, 0)
	err := t.db.read(ctx, func() {
		for _, row := range t.rows {
			if pred(row) {
				out = append(out, row)
			}
		}
	})
	return out, err
}

// Count returns the number of records.
func (t *Table[T, P]) Count(ctx context.Context) (int, error) {
	var n int
	err := t.db.read(ctx, func() {
		n = len(t.rows)
	})
	return n, err
}

// Update applies merge to a copy of the record and stores the result. The id
// and created_at are preserved and updated_at is refreshed. merge may return
// an error to abort without changing anything.
func (t *Table[T, P]) Update(ctx context.Context, id string, merge func(*T) error) (T, error) {
	var out T
	err := t.db.write(ctx, func(tx *txn) error {
		i := t.indexOf(id)
		if i < 0 {
			return ErrRecordNotFound
		}

		prev := t.rows[i]
		next := prev
		if err := merge(&next); err != nil {
			return err
		}
		meta, prevMeta := P(&next).Meta(), P(&prev).Meta()
		meta.ID = prevMeta.ID
		meta.CreatedAt = prevMeta.CreatedAt
		meta.UpdatedAt = t.db.now()
		t.rows[i] = next
		out = next

		if tx != nil {
			tx.undo = append(tx.undo, func() {
				if j := t.indexOf(id); j >= 0 {
					t.rows[j] = prev
				}
			})
		}
		return nil
	})
	return out, err
}

// Delete removes the record with the given id, returning ErrRecordNotFound when absent.
func (t *Table[T, P]) Delete(ctx context.Context, id string) error {
	return t.db.write(ctx, func(tx *txn) error {
		i := t.indexOf(id)
		if i < 0 {
			return ErrRecordNotFound
		}

		removed := t.rows[i]
		t.rows = append(t.rows[:i], t.rows[i+1:]...)

		if tx != nil {
			tx.undo = append(tx.undo, func() {
				pos := min(i, len(t.rows))
				t.rows = append(t.rows, removed)
				copy(t.rows[pos+1:], t.rows[pos:])
				t.rows[pos] = removed
			})
		}
		return nil
	})
}

func (t *Table[T, P]) indexOf(id string) int {
	for i := range t.rows {
		if P(&t.rows[i]).Meta().ID == id {
			return i
		}
	}
	return -1
}
