// Package memory provides an in-memory ports.SnapshotStore.
package memory

import (
	"context"
	"sync"

	"github.com/latticekit/lattice/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Snapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, instanceID string, snap domain.Snapshot) error {
	// Copy on write so the caller can't mutate the stored map.
	copied := make(domain.Snapshot, len(snap))
	for k, v := range snap {
		copied[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[instanceID] = copied
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, instanceID string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[instanceID]
	if !ok {
		return nil, domain.ErrInstanceNotFound
	}

	// Copy on read for the same reason.
	ret := make(domain.Snapshot, len(snap))
	for k, v := range snap {
		ret[k] = v
	}
	return ret, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, instanceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, instanceID)
	return nil
}

// List returns instance IDs with a stored snapshot.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
