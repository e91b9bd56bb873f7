package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Source exposes the named remap tables of loaded mapping data to fill
// actions.
type Source interface {
	// Table returns the named identifier remap table, or nil when the table
	// is absent or the data is unloaded.
	Table(name string) map[string]int
}

// FileData lazily loads identifier remap tables from a single JSON file of
// the form {"table": {"old-id": new-id, ...}, ...}. Unload drops the tables;
// a later Load re-reads the file.
type FileData struct {
	path string

	mu     sync.Mutex
	tables map[string]map[string]int
}

// NewFileData constructs unloaded mapping data backed by the file at path.
func NewFileData(path string) *FileData {
	return &FileData{path: path}
}

// Path returns the backing file path.
func (d *FileData) Path() string { return d.path }

// IsLoaded reports whether the tables are resident.
func (d *FileData) IsLoaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tables != nil
}

// Load reads and parses the backing file. Unlike best-effort state files, a
// missing mapping file is an error: a step cannot translate without its
// tables.
func (d *FileData) Load() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tables != nil {
		return nil
	}

	b, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read mapping file: %w", err)
	}
	var tables map[string]map[string]int
	if err := json.Unmarshal(b, &tables); err != nil {
		return fmt.Errorf("parse mapping file %s: %w", d.path, err)
	}
	if tables == nil {
		tables = make(map[string]map[string]int)
	}
	d.tables = tables
	return nil
}

// Unload releases the tables.
func (d *FileData) Unload() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables = nil
}

// Table returns the named remap table, or nil when absent or unloaded.
func (d *FileData) Table(name string) map[string]int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tables[name]
}

// MappedID resolves an identifier through the named table.
func (d *FileData) MappedID(table, from string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.tables[table][from]
	return id, ok
}
