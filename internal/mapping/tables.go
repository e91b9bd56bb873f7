package mapping

import (
	"sync"

	"viaduct/internal/domain"
)

// Tables is the shared destination that fill actions populate: one remap
// table per data key, readable by any step in the chain after boot.
type Tables struct {
	mu     sync.RWMutex
	tables map[domain.DataKey]map[string]int
}

// NewTables constructs an empty shared table set.
func NewTables() *Tables {
	return &Tables{tables: make(map[domain.DataKey]map[string]int)}
}

// Put installs the table for key, replacing any previous fill.
func (t *Tables) Put(key domain.DataKey, table map[string]int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tables[key] = table
}

// Get returns the table filled for key, or nil.
func (t *Tables) Get(key domain.DataKey) map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tables[key]
}

// Len reports how many keys have been filled.
func (t *Tables) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tables)
}

// Keys returns the filled keys in no particular order.
func (t *Tables) Keys() []domain.DataKey {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]domain.DataKey, 0, len(t.tables))
	for key := range t.tables {
		keys = append(keys, key)
	}
	return keys
}
