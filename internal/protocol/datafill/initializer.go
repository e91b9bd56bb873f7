package datafill

import (
	"sync"

	"viaduct/internal/domain"
)

// initializer pairs an owning protocol step with a deferred run-once fill
// action.
type initializer struct {
	protocol domain.Protocol
	fill     func()

	mu  sync.Mutex
	ran bool
}

// run executes the fill action once. Racing callers block until the first
// execution finishes, then return without re-running it.
func (in *initializer) run() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.ran {
		return
	}
	in.fill()
	in.ran = true
}

func (in *initializer) hasRun() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.ran
}
