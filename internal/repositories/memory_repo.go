package repositories

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound    = errors.New("not_found")
	ErrDuplicateID = errors.New("duplicate_id")
	ErrNilEntity   = errors.New("nil_entity")
)

/*
Entity:

* `comparable` → lets us compare a T against its zero value (nil for pointers)
* GetID / Clone so the store can index records and hand out copies
*/
type Entity[T any] interface {
	comparable
	GetID() string
	Clone() T
}

/*
MemoryRepo is an insertion-ordered, in-process collection for a single
entity type. One RWMutex guards the slice and its id index, so every
operation observes the collection either before or after a mutation,
never in the middle of one. Records go in and come out as copies.
*/
type MemoryRepo[T Entity[T]] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

func NewMemoryRepo[T Entity[T]]() *MemoryRepo[T] {
	return &MemoryRepo[T]{index: make(map[string]int)}
}

// -------------------------- public helpers --------------------------

func (r *MemoryRepo[T]) Create(_ context.Context, e T) error {
	var zero T
	if e == zero {
		return ErrNilEntity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := e.GetID()
	if _, exists := r.index[id]; exists {
		return ErrDuplicateID
	}
	r.index[id] = len(r.items)
	r.items = append(r.items, e.Clone())
	return nil
}

// GetByID returns a copy of the record, or the zero T (nil) when absent.
func (r *MemoryRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	i, ok := r.index[id]
	if !ok {
		return zero, nil
	}
	return r.items[i].Clone(), nil
}

// List returns copies of the records accepted by match, in insertion
// order. A nil match accepts everything.
func (r *MemoryRepo[T]) List(_ context.Context, match func(T) bool) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for _, item := range r.items {
		if match == nil || match(item) {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

// Delete removes the record and returns it.
func (r *MemoryRepo[T]) Delete(_ context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	i, ok := r.index[id]
	if !ok {
		return zero, ErrNotFound
	}
	removed := r.items[i]

	copy(r.items[i:], r.items[i+1:])
	r.items[len(r.items)-1] = zero
	r.items = r.items[:len(r.items)-1]

	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].GetID()] = j
	}
	return removed, nil
}

func (r *MemoryRepo[T]) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
