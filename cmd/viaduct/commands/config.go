package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"viaduct/internal/app"
	"viaduct/internal/domain"
	"viaduct/internal/protocol/intent"
)

type fileConfig struct {
	MappingDir string        `toml:"mapping_dir"`
	Intent     intentSpec    `toml:"intent"`
	Versions   []versionSpec `toml:"versions"`
	Steps      []stepSpec    `toml:"steps"`
}

type intentSpec struct {
	Strategy string `toml:"strategy"`
	Version  int    `toml:"version"`
}

type versionSpec struct {
	ID   int    `toml:"id"`
	Name string `toml:"name"`
}

type stepSpec struct {
	ID       string                    `toml:"id"`
	Client   int                       `toml:"client"`
	Server   int                       `toml:"server"`
	Mappings string                    `toml:"mappings"`
	Tables   map[string]map[string]int `toml:"tables"`
	Intents  []string                  `toml:"intents"`
	Fills    []fillSpec                `toml:"fills"`
}

type fillSpec struct {
	Key   string `toml:"key"`
	Table string `toml:"table"`
}

// loadEngineConfig parses the TOML engine definition at path into app.Config.
// Relative mapping directories resolve against the config file's directory.
func loadEngineConfig(path string) (app.Config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return app.Config{}, fmt.Errorf("load engine config: %w", err)
	}

	names := make(map[int]string, len(raw.Versions))
	for _, v := range raw.Versions {
		names[v.ID] = v.Name
	}
	resolve := func(id int) domain.ProtocolVersion {
		if id == 0 {
			return domain.Unknown
		}
		return domain.NewVersion(id, names[id])
	}

	in, err := intent.Parse(raw.Intent.Strategy, resolve(raw.Intent.Version))
	if err != nil {
		return app.Config{}, err
	}

	dir := strings.TrimSpace(raw.MappingDir)
	if dir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(path), dir)
	}

	cfg := app.Config{MappingDir: dir, Intent: in}
	for _, s := range raw.Steps {
		if s.ID == "" {
			return app.Config{}, fmt.Errorf("step missing id")
		}
		if s.Client == 0 || s.Server == 0 || s.Client == s.Server {
			return app.Config{}, fmt.Errorf("step %s needs distinct client and server versions", s.ID)
		}
		sc := app.StepConfig{
			ID:       domain.ProtocolID(s.ID),
			Client:   resolve(s.Client),
			Server:   resolve(s.Server),
			Mappings: strings.TrimSpace(s.Mappings),
			Tables:   s.Tables,
		}
		for _, f := range s.Fills {
			if f.Key == "" || f.Table == "" {
				return app.Config{}, fmt.Errorf("step %s has a fill missing key or table", s.ID)
			}
			sc.Fills = append(sc.Fills, app.FillConfig{Key: domain.DataKey(f.Key), Table: f.Table})
		}
		for _, key := range s.Intents {
			sc.Intents = append(sc.Intents, domain.DataKey(key))
		}
		cfg.Steps = append(cfg.Steps, sc)
	}
	return cfg, nil
}
