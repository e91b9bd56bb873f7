package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"viaduct/internal/app"
	"viaduct/internal/domain"
	"viaduct/internal/protocol/intent"
)

// TestNewWire_BootFromFiles exercises the whole engine: a file-backed step the
// intent skips, whose data the finalize sweep loads, fills, and releases.
func TestNewWire_BootFromFiles(t *testing.T) {
	dir := t.TempDir()
	mappings := `{"items": {"minecraft:bundle": 784}}`
	if err := os.WriteFile(filepath.Join(dir, "1.18to1.17.json"), []byte(mappings), 0o600); err != nil {
		t.Fatalf("write mapping file: %v", err)
	}

	v16 := domain.NewVersion(16, "1.16")
	v17 := domain.NewVersion(17, "1.17")
	v18 := domain.NewVersion(18, "1.18")

	cfg := app.Config{
		MappingDir: dir,
		// Only the step reaching server 1.16 activates.
		Intent: intent.ForServerVersion(v16),
		Steps: []app.StepConfig{
			{
				ID:     "1.17->1.16",
				Client: v17,
				Server: v16,
				Tables: map[string]map[string]int{"sounds": {"entity.axolotl.swim": 412}},
				Fills:  []app.FillConfig{{Key: "sound-ids-1.17", Table: "sounds"}},
				// Depends on the other step's item table either way.
				Intents: []domain.DataKey{"item-ids-1.18"},
			},
			{
				ID:       "1.18->1.17",
				Client:   v18,
				Server:   v17,
				Mappings: "1.18to1.17.json",
				Fills:    []app.FillConfig{{Key: "item-ids-1.18", Table: "items"}},
			},
		},
	}

	w, err := app.NewWire(cfg)
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	if err := w.Manager.Boot(); err != nil {
		t.Fatalf("boot: %v", err)
	}

	if got := w.Shared.Get("sound-ids-1.17")["entity.axolotl.swim"]; got != 412 {
		t.Fatalf("active step's fill must run, got %d", got)
	}
	if got := w.Shared.Get("item-ids-1.18")["minecraft:bundle"]; got != 784 {
		t.Fatalf("sweep must fill the skipped step's table from disk, got %d", got)
	}

	skipped, ok := w.Manager.Step("1.18->1.17")
	if !ok {
		t.Fatal("step lookup failed")
	}
	if skipped.IsRegistered() {
		t.Fatal("upgrade step must be skipped by the intent")
	}
	if skipped.MappingData().IsLoaded() {
		t.Fatal("sweep-loaded mapping file must be released after boot")
	}

	active, _ := w.Manager.Step("1.17->1.16")
	if !active.IsRegistered() || !active.MappingData().IsLoaded() {
		t.Fatal("downgrade step must be active with resident data")
	}

	path, err := w.Manager.ProtocolPath(v18, v16)
	if err != nil {
		t.Fatalf("protocol path: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("want 2 hops from 1.18 to 1.16, got %d", len(path))
	}
}
