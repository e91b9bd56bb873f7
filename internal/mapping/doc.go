// Package mapping provides concrete mapping-data implementations for protocol
// steps.
//
// FileData lazily loads identifier remap tables from JSON files on disk and
// releases them on demand; Static serves fixed in-memory tables. Both satisfy
// domain.MappingData and are concurrency-safe via internal locking.
package mapping
