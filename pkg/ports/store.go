package ports

import (
	"context"

	"github.com/latticekit/lattice/pkg/domain"
)

// SnapshotStore defines the interface for persisting instance slices.
// The effect layer loads a snapshot to seed an instance (via a SET_DATA
// style action) and saves what the instance's selectors read back.
type SnapshotStore interface {
	// Save persists the snapshot for a given instance ID.
	Save(ctx context.Context, instanceID string, snap domain.Snapshot) error

	// Load retrieves the snapshot for a given instance ID.
	// Returns domain.ErrInstanceNotFound if the instance does not exist.
	Load(ctx context.Context, instanceID string) (domain.Snapshot, error)

	// Delete removes the snapshot for a given instance ID.
	Delete(ctx context.Context, instanceID string) error

	// List returns the instance IDs with a stored snapshot.
	List(ctx context.Context) ([]string, error)
}
