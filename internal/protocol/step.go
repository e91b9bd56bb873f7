package protocol

import (
	"fmt"
	"sync/atomic"

	"viaduct/internal/domain"
	"viaduct/internal/protocol/datafill"
)

// DeclareFunc registers a step's fill actions with the shared-data registry.
// The step itself is passed as the owner for the registrations.
type DeclareFunc func(f *datafill.Fillers, owner domain.Protocol) error

// Step bridges one client version to one server version. The zero value is
// not usable; construct with New.
type Step struct {
	id     domain.ProtocolID
	client domain.ProtocolVersion
	server domain.ProtocolVersion
	data   domain.MappingData

	declare DeclareFunc
	intents []domain.DataKey

	registered atomic.Bool
}

// Option configures a Step.
type Option func(*Step)

// WithDataInitializers sets the hook registering the step's fill actions.
func WithDataInitializers(fn DeclareFunc) Option {
	return func(s *Step) { s.declare = fn }
}

// WithIntents declares the data keys the step requires regardless of whether
// their owning steps join the chain.
func WithIntents(keys ...domain.DataKey) Option {
	return func(s *Step) { s.intents = append(s.intents, keys...) }
}

// New constructs an inactive step translating client to server over the given
// mapping data.
func New(id domain.ProtocolID, client, server domain.ProtocolVersion, data domain.MappingData, opts ...Option) *Step {
	s := &Step{id: id, client: client, server: server, data: data}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the step's stable identity.
func (s *Step) ID() domain.ProtocolID { return s.id }

// ClientVersion returns the client-side version the step translates from.
func (s *Step) ClientVersion() domain.ProtocolVersion { return s.client }

// ServerVersion returns the server-side version the step translates to.
func (s *Step) ServerVersion() domain.ProtocolVersion { return s.server }

// MappingData returns the step's owned mapping data.
func (s *Step) MappingData() domain.MappingData { return s.data }

// IsRegistered reports whether the step has been activated into the chain.
func (s *Step) IsRegistered() bool { return s.registered.Load() }

// MarkRegistered records activation into the translation chain.
func (s *Step) MarkRegistered() { s.registered.Store(true) }

// DeclareData registers the step's fill actions and intents with the registry.
func (s *Step) DeclareData(f *datafill.Fillers) error {
	if s.declare != nil {
		if err := s.declare(f, s); err != nil {
			return fmt.Errorf("declare data for %s: %w", s.id, err)
		}
	}
	for _, key := range s.intents {
		if err := f.RegisterIntent(key); err != nil {
			return err
		}
	}
	return nil
}
