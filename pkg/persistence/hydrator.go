// Package persistence is the effect coordinator around the store: it
// loads snapshots into instances and persists what their selectors read.
// The core stays pure; this layer only talks to it through plain actions
// and ports.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/latticekit/lattice/internal/logging"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
)

// SeedFunc builds the load-signal action for one instance: typically the
// widget's SET_DATA template.
type SeedFunc func(instanceID string, snap domain.Snapshot) domain.Action

// Hydrator seeds instances from a snapshot store by dispatching plain
// actions. Instances without a stored snapshot are left at their default
// state.
type Hydrator struct {
	snapshots  ports.SnapshotStore
	dispatcher ports.Dispatcher
	seed       SeedFunc
	logger     *slog.Logger
}

// NewHydrator wires a snapshot store to a dispatcher.
func NewHydrator(snapshots ports.SnapshotStore, dispatcher ports.Dispatcher, seed SeedFunc, logger *slog.Logger) *Hydrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Hydrator{
		snapshots:  snapshots,
		dispatcher: dispatcher,
		seed:       seed,
		logger:     logger,
	}
}

// Hydrate loads one instance's snapshot and dispatches its seed action.
// A missing snapshot is not an error.
func (h *Hydrator) Hydrate(ctx context.Context, instanceID string) error {
	snap, err := h.snapshots.Load(ctx, instanceID)
	if errors.Is(err, domain.ErrInstanceNotFound) {
		h.logger.Debug("no snapshot, keeping defaults", "instance", instanceID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to hydrate %s: %w", instanceID, err)
	}

	h.dispatcher.Dispatch(h.seed(instanceID, snap))
	h.logger.Info("instance hydrated", "instance", instanceID)
	return nil
}

// HydrateAll hydrates each listed instance, stopping at the first error.
func (h *Hydrator) HydrateAll(ctx context.Context, instanceIDs ...string) error {
	for _, id := range instanceIDs {
		if err := h.Hydrate(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
