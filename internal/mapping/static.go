package mapping

import "sync"

// Static serves fixed in-memory remap tables for steps without a mapping
// file. Load marks the tables resident without touching disk.
type Static struct {
	fixed map[string]map[string]int

	mu     sync.Mutex
	loaded bool
}

// NewStatic constructs unloaded static mapping data over the given tables.
func NewStatic(tables map[string]map[string]int) *Static {
	return &Static{fixed: tables}
}

// IsLoaded reports whether Load has been called since the last Unload.
func (s *Static) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Load marks the tables resident.
func (s *Static) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	return nil
}

// Unload marks the tables released.
func (s *Static) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
}

// Table returns the named remap table, or nil when absent or unloaded.
func (s *Static) Table(name string) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	return s.fixed[name]
}
