package memstore

import (
	"maps"
	"slices"
)

// Table is an id-keyed set of rows. Listing is always in ascending id order.
// last is the highest id ever stored; it survives deletes so ids are never reused.
type Table[T any] struct {
	rows map[int64]T
	last int64
}

func newTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int64]T)}
}

func (t *Table[T]) Get(id int64) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *Table[T]) Has(id int64) bool {
	_, ok := t.rows[id]
	return ok
}

// Put inserts or overwrites the row stored under id.
func (t *Table[T]) Put(id int64, v T) {
	t.rows[id] = v
	if id > t.last {
		t.last = id
	}
}

// Delete reports whether a row was removed.
func (t *Table[T]) Delete(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// DeleteWhere removes every row matching pred and returns how many went.
func (t *Table[T]) DeleteWhere(pred func(T) bool) int {
	n := 0
	for id, v := range t.rows {
		if pred(v) {
			delete(t.rows, id)
			n++
		}
	}
	return n
}

// NextID is one past the highest id ever stored, or 1 for a new table.
func (t *Table[T]) NextID() int64 {
	return t.last + 1
}

// Sequence returns the high-water mark used by NextID.
func (t *Table[T]) Sequence() int64 {
	return t.last
}

// Advance raises the high-water mark to at least n.
func (t *Table[T]) Advance(n int64) {
	if n > t.last {
		t.last = n
	}
}

func (t *Table[T]) Len() int {
	return len(t.rows)
}

func (t *Table[T]) List() []T {
	return t.Filter(nil)
}

// Filter returns matching rows in id order. A nil pred matches everything.
func (t *Table[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		v := t.rows[id]
		if pred == nil || pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *Table[T]) clone() *Table[T] {
	return &Table[T]{rows: maps.Clone(t.rows), last: t.last}
}
