package mapping_test

import (
	"os"
	"path/filepath"
	"testing"

	"viaduct/internal/mapping"
)

func writeMappings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "1.17to1.16.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write mapping file: %v", err)
	}
	return path
}

func TestFileData_LoadUnload(t *testing.T) {
	path := writeMappings(t, `{"items": {"minecraft:bundle": 784}, "sounds": {"entity.axolotl.swim": 412}}`)
	d := mapping.NewFileData(path)

	if d.IsLoaded() {
		t.Fatal("data must start unloaded")
	}
	if d.Table("items") != nil {
		t.Fatal("unloaded data must serve no tables")
	}

	if err := d.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !d.IsLoaded() {
		t.Fatal("want loaded after Load")
	}
	if id, ok := d.MappedID("items", "minecraft:bundle"); !ok || id != 784 {
		t.Fatalf("want items mapping 784, got %d ok=%v", id, ok)
	}
	if _, ok := d.MappedID("items", "minecraft:anvil"); ok {
		t.Fatal("unknown identifier must not resolve")
	}
	if d.Table("blocks") != nil {
		t.Fatal("absent table must be nil")
	}

	// Loading resident data is a no-op.
	if err := d.Load(); err != nil {
		t.Fatalf("reload while loaded: %v", err)
	}

	d.Unload()
	if d.IsLoaded() {
		t.Fatal("want unloaded after Unload")
	}
	if _, ok := d.MappedID("items", "minecraft:bundle"); ok {
		t.Fatal("unloaded data must not resolve")
	}

	// Unload then Load re-reads the file.
	if err := d.Load(); err != nil {
		t.Fatalf("load after unload: %v", err)
	}
	if id, ok := d.MappedID("sounds", "entity.axolotl.swim"); !ok || id != 412 {
		t.Fatalf("want sounds mapping 412 after reload, got %d ok=%v", id, ok)
	}
}

func TestFileData_MissingFileFails(t *testing.T) {
	d := mapping.NewFileData(filepath.Join(t.TempDir(), "nope.json"))
	if err := d.Load(); err == nil {
		t.Fatal("want error for missing mapping file")
	}
	if d.IsLoaded() {
		t.Fatal("failed load must leave data unloaded")
	}
}

func TestFileData_InvalidJSONFails(t *testing.T) {
	d := mapping.NewFileData(writeMappings(t, `{"items": 7}`))
	if err := d.Load(); err == nil {
		t.Fatal("want error for malformed mapping file")
	}
}

func TestStatic_LoadUnload(t *testing.T) {
	s := mapping.NewStatic(map[string]map[string]int{"blocks": {"stone": 1}})

	if s.IsLoaded() || s.Table("blocks") != nil {
		t.Fatal("static data must start unloaded")
	}
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Table("blocks")["stone"] != 1 {
		t.Fatal("want fixed table served while loaded")
	}
	s.Unload()
	if s.IsLoaded() || s.Table("blocks") != nil {
		t.Fatal("static data must release tables on unload")
	}
}

func TestTables_PutGet(t *testing.T) {
	ts := mapping.NewTables()
	if ts.Len() != 0 {
		t.Fatal("want empty table set")
	}
	ts.Put("item-ids", map[string]int{"stone": 1})
	ts.Put("item-ids", map[string]int{"stone": 2})
	if got := ts.Get("item-ids")["stone"]; got != 2 {
		t.Fatalf("want latest fill to win, got %d", got)
	}
	if ts.Len() != 1 || len(ts.Keys()) != 1 {
		t.Fatalf("want one key, got len=%d keys=%v", ts.Len(), ts.Keys())
	}
	if ts.Get("missing") != nil {
		t.Fatal("unknown key must be nil")
	}
}
