// Package tests holds reusable contract suites for ports implementations.
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
)

// RunSnapshotStoreContract verifies that an adapter complies with
// ports.SnapshotStore. Adapters call it from their own tests.
func RunSnapshotStoreContract(t *testing.T, store ports.SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-instance")
		if !errors.Is(err, domain.ErrInstanceNotFound) {
			t.Errorf("expected ErrInstanceNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		snap := domain.Snapshot{"count": 3, "color": "red"}
		if err := store.Save(ctx, "inst-1", snap); err != nil {
			t.Fatalf("failed to save snapshot: %v", err)
		}

		loaded, err := store.Load(ctx, "inst-1")
		if err != nil {
			t.Fatalf("failed to load snapshot: %v", err)
		}
		if loaded["color"] != "red" {
			t.Errorf("expected color 'red', got %v", loaded["color"])
		}
	})

	t.Run("Save_IsolatedFromCaller", func(t *testing.T) {
		snap := domain.Snapshot{"count": 1, "color": "green"}
		if err := store.Save(ctx, "inst-2", snap); err != nil {
			t.Fatalf("failed to save snapshot: %v", err)
		}

		// Mutating the caller's map must not leak into the store.
		snap["color"] = "blue"

		loaded, err := store.Load(ctx, "inst-2")
		if err != nil {
			t.Fatalf("failed to load snapshot: %v", err)
		}
		if loaded["color"] != "green" {
			t.Errorf("store observed caller mutation: got %v", loaded["color"])
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("failed to list instances: %v", err)
		}
		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for _, want := range []string{"inst-1", "inst-2"} {
			if !lookup[want] {
				t.Errorf("instance %s missing from list", want)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "inst-1"); err != nil {
			t.Fatalf("failed to delete snapshot: %v", err)
		}
		_, err := store.Load(ctx, "inst-1")
		if !errors.Is(err, domain.ErrInstanceNotFound) {
			t.Errorf("expected ErrInstanceNotFound after delete, got %v", err)
		}
	})

	t.Run("Delete_Idempotent", func(t *testing.T) {
		if err := store.Delete(ctx, "inst-1"); err != nil {
			t.Errorf("second delete should be a no-op, got %v", err)
		}
	})
}
