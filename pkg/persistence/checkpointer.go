package persistence

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/latticekit/lattice/internal/logging"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
)

// ReadFunc extracts one instance's snapshot from the global tree. The
// second return is false when the instance's slice has not been written
// yet; nothing is persisted in that case.
type ReadFunc func(domain.State) (domain.Snapshot, bool)

// Subscribable is the slice of the store surface the checkpointer needs.
type Subscribable interface {
	ports.StateSource
	Subscribe(fn func(domain.State)) func()
}

// Checkpointer persists tracked instances whenever the store changes.
// Store notifications run on the dispatching goroutine, so the
// checkpointer only records the newest tree there and signals its own
// goroutine, which does the actual writes, coalescing bursts of
// dispatches into one flush of the latest state.
type Checkpointer struct {
	snapshots ports.SnapshotStore
	logger    *slog.Logger

	mu      sync.Mutex
	tracked map[string]ReadFunc
	last    map[string]domain.Snapshot
	latest  domain.State

	signal chan struct{}
}

// NewCheckpointer creates a checkpointer writing to snapshots.
func NewCheckpointer(snapshots ports.SnapshotStore, logger *slog.Logger) *Checkpointer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Checkpointer{
		snapshots: snapshots,
		logger:    logger,
		tracked:   make(map[string]ReadFunc),
		last:      make(map[string]domain.Snapshot),
		signal:    make(chan struct{}, 1),
	}
}

// Track registers an instance for persistence.
func (c *Checkpointer) Track(instanceID string, read ReadFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tracked[instanceID] = read
}

// Run subscribes to src and persists changed instances until ctx is
// done. It blocks; run it on its own goroutine.
func (c *Checkpointer) Run(ctx context.Context, src Subscribable) {
	cancel := src.Subscribe(func(state domain.State) {
		// Record the newest tree under the lock, then nudge the run
		// loop. The buffered signal makes back-to-back notifications
		// collapse into one flush of whatever is newest by then.
		c.mu.Lock()
		c.latest = state
		c.mu.Unlock()

		select {
		case c.signal <- struct{}{}:
		default:
		}
	})
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			// Final flush so a clean shutdown loses nothing.
			c.Flush(context.Background(), src.State())
			return
		case <-c.signal:
			c.mu.Lock()
			state := c.latest
			c.mu.Unlock()
			c.Flush(ctx, state)
		}
	}
}

// Flush persists every tracked instance whose snapshot changed since
// the previous flush.
func (c *Checkpointer) Flush(ctx context.Context, state domain.State) {
	c.mu.Lock()
	reads := make(map[string]ReadFunc, len(c.tracked))
	for id, read := range c.tracked {
		reads[id] = read
	}
	c.mu.Unlock()

	for id, read := range reads {
		snap, ok := read(state)
		if !ok {
			continue
		}

		c.mu.Lock()
		unchanged := reflect.DeepEqual(c.last[id], snap)
		c.mu.Unlock()
		if unchanged {
			continue
		}

		if err := c.snapshots.Save(ctx, id, snap); err != nil {
			c.logger.Error("failed to persist instance", "instance", id, "error", err)
			continue
		}

		c.mu.Lock()
		c.last[id] = snap
		c.mu.Unlock()
		c.logger.Debug("instance persisted", "instance", id)
	}
}
