package manager

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"viaduct/internal/domain"
	"viaduct/internal/protocol"
	"viaduct/internal/protocol/datafill"
	"viaduct/internal/protocol/intent"
)

// ErrNoPath is returned when no chain of steps bridges the requested versions.
var ErrNoPath = errors.New("no translation path between versions")

// Manager holds the known protocol steps and boots their mapping data.
type Manager struct {
	logger *log.Logger
	intent intent.Intent
	fills  *datafill.Fillers

	steps    []*protocol.Step
	byID     map[domain.ProtocolID]*protocol.Step
	byClient map[int][]*protocol.Step
}

// New constructs an empty manager booting with the given loading intent.
func New(in intent.Intent, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		logger:   logger,
		intent:   in,
		fills:    datafill.New(logger),
		byID:     make(map[domain.ProtocolID]*protocol.Step),
		byClient: make(map[int][]*protocol.Step),
	}
}

// Register adds a step and lets it declare its fill actions and intents.
// Steps must be registered before Boot; a duplicate id is a wiring defect.
func (m *Manager) Register(step *protocol.Step) error {
	if _, ok := m.byID[step.ID()]; ok {
		return fmt.Errorf("protocol step %s registered twice", step.ID())
	}
	if err := step.DeclareData(m.fills); err != nil {
		return err
	}
	m.steps = append(m.steps, step)
	m.byID[step.ID()] = step
	m.byClient[step.ClientVersion().ID()] = append(m.byClient[step.ClientVersion().ID()], step)
	return nil
}

// Step returns the registered step with the given id.
func (m *Manager) Step(id domain.ProtocolID) (*protocol.Step, bool) {
	s, ok := m.byID[id]
	return s, ok
}

// Steps returns the registered steps in registration order.
func (m *Manager) Steps() []*protocol.Step {
	return append([]*protocol.Step(nil), m.steps...)
}

// Versions returns every version some registered step translates from or to,
// oldest first.
func (m *Manager) Versions() []domain.ProtocolVersion {
	seen := make(map[int]domain.ProtocolVersion)
	for _, s := range m.steps {
		seen[s.ClientVersion().ID()] = s.ClientVersion()
		seen[s.ServerVersion().ID()] = s.ServerVersion()
	}
	out := make([]domain.ProtocolVersion, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LowerThan(out[j]) })
	return out
}

// InitializedTypesFor reports whether every fill action of the given step has
// run; used by connection handlers while a reload may be clearing the
// registry.
func (m *Manager) InitializedTypesFor(id domain.ProtocolID) bool {
	return m.fills.InitializedTypesForProtocol(id)
}

// Fillers exposes the shared-data registry for steps registering out-of-band.
func (m *Manager) Fillers() *datafill.Fillers {
	return m.fills
}

// Boot runs the mapping-initialization phase. Each registered step is offered
// to the loading intent with its own version pair; selected steps are
// activated, loading their mapping data and draining their fill actions in
// registration order. Leftover intents of skipped steps are reconciled by the
// finalize sweep, and the registry is cleared. Any failure aborts the boot
// with partial data rather than continuing.
func (m *Manager) Boot() error {
	for _, step := range m.steps {
		if !m.intent.ShouldBeLoaded(step, step.ClientVersion(), step.ServerVersion()) {
			m.logger.Debug("skipping protocol step", "step", step.ID())
			continue
		}
		if err := m.activate(step); err != nil {
			return err
		}
	}
	if err := m.fills.InitializeRequired(); err != nil {
		return err
	}
	m.fills.Clear()
	return nil
}

func (m *Manager) activate(step *protocol.Step) error {
	data := step.MappingData()
	if !data.IsLoaded() {
		if err := data.Load(); err != nil {
			return fmt.Errorf("load mapping data for %s: %w", step.ID(), err)
		}
	}
	step.MarkRegistered()
	m.fills.InitializeFromProtocol(step.ID())
	m.logger.Debug("activated protocol step", "step", step.ID())
	return nil
}

// ProtocolPath returns the shortest ordered chain of steps translating the
// client version to the server version. The search is pure and may be
// repeated per connection.
func (m *Manager) ProtocolPath(client, server domain.ProtocolVersion) ([]*protocol.Step, error) {
	if client.Equals(server) {
		return nil, nil
	}

	// Breadth-first over the version graph; each step is an edge from its
	// client version to its server version.
	type node struct {
		version int
		path    []*protocol.Step
	}
	visited := map[int]bool{client.ID(): true}
	queue := []node{{version: client.ID()}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, step := range m.byClient[cur.version] {
			next := step.ServerVersion().ID()
			if visited[next] {
				continue
			}
			path := make([]*protocol.Step, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, step)
			if next == server.ID() {
				return path, nil
			}
			visited[next] = true
			queue = append(queue, node{version: next, path: path})
		}
	}
	return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, client, server)
}
