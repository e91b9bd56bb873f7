package app

import (
	"github.com/charmbracelet/log"

	"viaduct/internal/domain"
	"viaduct/internal/protocol/intent"
)

// Config holds the parsed engine definition used to build the manager.
type Config struct {
	MappingDir string        // directory holding mapping table files
	Intent     intent.Intent // loading intent for Boot
	Steps      []StepConfig
	Logger     *log.Logger // optional; defaults to log.Default()
}

// StepConfig describes one translation step.
type StepConfig struct {
	ID       domain.ProtocolID
	Client   domain.ProtocolVersion
	Server   domain.ProtocolVersion
	Mappings string                    // JSON mapping file under MappingDir; empty for static steps
	Tables   map[string]map[string]int // in-memory tables when Mappings is empty
	Fills    []FillConfig
	Intents  []domain.DataKey
}

// FillConfig pairs a shared data key with the source table that fills it.
type FillConfig struct {
	Key   domain.DataKey
	Table string
}
