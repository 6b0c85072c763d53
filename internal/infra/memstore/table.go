package memstore

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// table is one entity map. Values are cloned on the way in and out so
// callers never share memory with the store.
type table[T any] struct {
	rows  map[uuid.UUID]T
	clone func(T) T
	cmp   func(a, b T) int
}

func newTable[T any](clone func(T) T, cmp func(a, b T) int) *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]T), clone: clone, cmp: cmp}
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	return t.clone(v), true
}

// put stores v and returns the function that restores the previous state.
func (t *table[T]) put(id uuid.UUID, v T) func() {
	old, existed := t.rows[id]
	t.rows[id] = t.clone(v)
	if existed {
		return func() { t.rows[id] = old }
	}
	return func() { delete(t.rows, id) }
}

func (t *table[T]) remove(id uuid.UUID) (func(), bool) {
	old, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	delete(t.rows, id)
	return func() { t.rows[id] = old }, true
}

func (t *table[T]) list(match func(T) bool) []T {
	result := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if match == nil || match(v) {
			result = append(result, t.clone(v))
		}
	}
	slices.SortFunc(result, t.cmp)
	return result
}

func (t *table[T]) exists(match func(T) bool) bool {
	for _, v := range t.rows {
		if match(v) {
			return true
		}
	}
	return false
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
