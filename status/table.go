package status

import (
	"sort"
	"sync"
)

// Table maps metric names to lazily allocated values of type T
// Lookups after the first allocation only take the read lock
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Entry returns the value for name, allocating it on first use
func (t *Table[T]) Entry(name string) *T {
	t.mu.RLock()
	if p, ok := t.items[name]; ok {
		t.mu.RUnlock()
		return p
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.items[name]; ok {
		return p
	}
	p := new(T)
	t.items[name] = p
	return p
}

// Each visits entries in name order
func (t *Table[T]) Each(fn func(name string, v *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.items))
	for k := range t.items {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fn(k, t.items[k])
	}
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
