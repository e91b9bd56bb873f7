package datafill

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"viaduct/internal/domain"
)

// ErrCleared is returned when registering against a registry that has already
// shut down via Clear. Configure the engine with the All intent instead of
// registering late.
var ErrCleared = errors.New("data-fill registry already cleared")

// MissingInitializerError reports a data key with no registered fill action, a
// wiring defect between protocol steps.
type MissingInitializerError struct {
	Key domain.DataKey
}

func (e *MissingInitializerError) Error() string {
	return fmt.Sprintf("no initializer registered for %s", e.Key)
}

// Fillers is the shared-data registry. It collects fill actions and intents
// while the translation chain is assembled, drains them as steps are
// activated, and reconciles leftover intents in InitializeRequired.
//
// The registry has exactly two states: active and, after Clear, terminally
// cleared. One lock covers every operation, so connection handlers may call
// InitializedTypesForProtocol while a reload clears the registry without
// observing a torn state.
type Fillers struct {
	logger *log.Logger

	mu         sync.RWMutex
	byKey      map[domain.DataKey]*initializer
	byProtocol map[domain.ProtocolID][]*initializer
	intents    map[domain.DataKey]struct{}
	cleared    bool
}

// New constructs an active registry. A nil logger falls back to the package
// default.
func New(logger *log.Logger) *Fillers {
	if logger == nil {
		logger = log.Default()
	}
	return &Fillers{
		logger:     logger,
		byKey:      make(map[domain.DataKey]*initializer),
		byProtocol: make(map[domain.ProtocolID][]*initializer),
		intents:    make(map[domain.DataKey]struct{}),
	}
}

// Register installs the fill action for key, owned by the given protocol step.
// A later registration for the same key replaces the earlier one; callers must
// not register one key under two different steps.
func (f *Fillers) Register(key domain.DataKey, protocol domain.Protocol, fill func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cleared {
		return fmt.Errorf("register %s: %w", key, ErrCleared)
	}
	in := &initializer{protocol: protocol, fill: fill}
	f.byKey[key] = in
	f.byProtocol[protocol.ID()] = append(f.byProtocol[protocol.ID()], in)
	return nil
}

// RegisterIntent records that key's data must eventually be filled, whether or
// not its owning step joins the chain. The fill action may be registered
// later; the pairing is only enforced by InitializeRequired.
func (f *Fillers) RegisterIntent(key domain.DataKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cleared {
		return fmt.Errorf("register intent %s: %w", key, ErrCleared)
	}
	f.intents[key] = struct{}{}
	return nil
}

// Initialize runs key's fill action immediately.
func (f *Fillers) Initialize(key domain.DataKey) error {
	f.mu.RLock()
	in := f.byKey[key]
	f.mu.RUnlock()
	if in == nil {
		return &MissingInitializerError{Key: key}
	}
	in.run()
	return nil
}

// InitializeFromProtocol runs every fill action registered under the given
// step, in registration order. A step with no registrations is a no-op.
// Actions that already ran are not re-run.
func (f *Fillers) InitializeFromProtocol(id domain.ProtocolID) {
	f.mu.RLock()
	ins := f.byProtocol[id]
	f.mu.RUnlock()
	for _, in := range ins {
		in.run()
	}
}

// InitializedTypesForProtocol reports whether every fill action registered
// under the given step has run. A step with no registrations, or a cleared
// registry, is vacuously initialized.
func (f *Fillers) InitializedTypesForProtocol(id domain.ProtocolID) bool {
	f.mu.RLock()
	ins := f.byProtocol[id]
	f.mu.RUnlock()
	for _, in := range ins {
		if !in.hasRun() {
			return false
		}
	}
	return true
}

// InitializeRequired is the finalize sweep. For every declared intent whose
// owning step never joined the chain, it loads the step's mapping data if
// needed, runs the fill action, and afterwards unloads exactly the datasets
// this sweep loaded, reclaiming tables for steps outside the active chain.
// Intents owned by activated steps are skipped; their data fills through the
// per-protocol path. An intent with no registered fill action is a fatal
// wiring defect.
func (f *Fillers) InitializeRequired() error {
	f.mu.RLock()
	intents := make([]domain.DataKey, 0, len(f.intents))
	for key := range f.intents {
		intents = append(intents, key)
	}
	byKey := make(map[domain.DataKey]*initializer, len(f.byKey))
	for key, in := range f.byKey {
		byKey[key] = in
	}
	f.mu.RUnlock()

	var (
		filled []string
		loaded []domain.MappingData
	)
	for _, key := range intents {
		in := byKey[key]
		if in == nil {
			return &MissingInitializerError{Key: key}
		}
		if in.protocol.IsRegistered() {
			// Activated, so its data is filled through the normal path.
			continue
		}

		data := in.protocol.MappingData()
		if !data.IsLoaded() {
			if err := data.Load(); err != nil {
				return fmt.Errorf("load mapping data for %s: %w", key, err)
			}
			loaded = append(loaded, data)
		}

		filled = append(filled, key.String())
		in.run()
	}

	if len(filled) > 0 {
		f.logger.Debug("loaded additional data classes", "keys", strings.Join(filled, ", "))

		// Release tables of steps outside the active chain again.
		for _, data := range loaded {
			data.Unload()
		}
	}
	return nil
}

// Clear drops the registered fill actions and intents once all mapping data
// loading has completed. The transition is one-way; registrations afterwards
// fail with ErrCleared.
func (f *Fillers) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byKey = nil
	f.byProtocol = nil
	f.intents = nil
	f.cleared = true
}
