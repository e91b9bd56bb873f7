package app

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"viaduct/internal/domain"
	"viaduct/internal/mapping"
	"viaduct/internal/protocol"
	"viaduct/internal/protocol/datafill"
	"viaduct/internal/services/manager"
)

// Wire bundles the manager, shared tables, and logger for the CLI.
type Wire struct {
	Logger  *log.Logger
	Manager *manager.Manager
	Shared  *mapping.Tables
}

// NewWire constructs the engine graph from cfg. Steps are registered but not
// booted; commands call Manager.Boot once they need mapping data resident.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	shared := mapping.NewTables()
	mgr := manager.New(cfg.Intent, logger)

	for _, sc := range cfg.Steps {
		var (
			data domain.MappingData
			src  mapping.Source
		)
		if sc.Mappings != "" {
			fd := mapping.NewFileData(filepath.Join(cfg.MappingDir, sc.Mappings))
			data, src = fd, fd
		} else {
			st := mapping.NewStatic(sc.Tables)
			data, src = st, st
		}

		fills := sc.Fills
		step := protocol.New(sc.ID, sc.Client, sc.Server, data,
			protocol.WithIntents(sc.Intents...),
			protocol.WithDataInitializers(func(f *datafill.Fillers, owner domain.Protocol) error {
				for _, fill := range fills {
					if err := f.Register(fill.Key, owner, func() {
						shared.Put(fill.Key, src.Table(fill.Table))
					}); err != nil {
						return err
					}
				}
				return nil
			}))
		if err := mgr.Register(step); err != nil {
			return nil, err
		}
	}

	return &Wire{Logger: logger, Manager: mgr, Shared: shared}, nil
}
