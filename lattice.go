package lattice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/latticekit/lattice/internal/logging"
	"github.com/latticekit/lattice/internal/metrics"
	"github.com/latticekit/lattice/internal/runtime"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/persistence"
	"github.com/latticekit/lattice/pkg/ports"
)

// Version is the library version, overridable at build time.
var Version = "0.1.0 (dev)"

// Store is the high-level entry point: a state container with serialized
// dispatch, change subscription, and optional logging and metrics.
type Store struct {
	runtime  *runtime.Store
	logger   *slog.Logger
	recorder *metrics.Recorder

	snapshots    ports.SnapshotStore
	checkpointer *persistence.Checkpointer

	mu      sync.Mutex
	tracked []string
	seeds   map[string]persistence.SeedFunc
}

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics registers Prometheus collectors with reg and enables
// dispatch instrumentation.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Store) {
		s.recorder = metrics.New(reg)
	}
}

// WithStateStore attaches a snapshot store. Instances registered with
// Track are then hydrated by Hydrate and persisted by RunCheckpointer.
func WithStateStore(snapshots ports.SnapshotStore) Option {
	return func(s *Store) {
		s.snapshots = snapshots
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		runtime: runtime.New(),
		logger:  logging.NewNop(),
		seeds:   make(map[string]persistence.SeedFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.snapshots != nil {
		s.checkpointer = persistence.NewCheckpointer(s.snapshots, s.logger)
	}
	return s
}

// Mount registers a slice reducer under a distinct key, living at lens
// in the state tree. Reducers are applied in mount order.
func (s *Store) Mount(key string, lens domain.Lens, r domain.SliceReducer) {
	s.runtime.Register(key, lens, r)
	s.logger.Debug("slice mounted", "key", key)
}

// MountAt mounts a slice under a top-level key equal to key.
func (s *Store) MountAt(key string, r domain.SliceReducer) {
	s.Mount(key, domain.NewLens(key), r)
}

// Dispatch applies the action through the reducer tree. Safe for
// concurrent use; actions are applied one at a time, in dispatch order.
func (s *Store) Dispatch(a domain.Action) {
	start := time.Now()
	s.runtime.Dispatch(a)
	s.recorder.Dispatch(a.Meta.InstanceID, string(a.Type), time.Since(start).Seconds())
	s.logger.Debug("action dispatched",
		"type", string(a.Type),
		"instance", a.Meta.InstanceID,
	)
}

// Track registers persistence hooks for a mounted instance: seed builds
// the action that loads a stored snapshot back into its slice, read
// extracts the slice's snapshot from the tree for saving. A no-op
// unless the store was built with WithStateStore.
func (s *Store) Track(instanceID string, seed persistence.SeedFunc, read persistence.ReadFunc) {
	if s.checkpointer == nil {
		return
	}
	s.mu.Lock()
	if _, ok := s.seeds[instanceID]; !ok {
		s.tracked = append(s.tracked, instanceID)
	}
	s.seeds[instanceID] = seed
	s.mu.Unlock()
	s.checkpointer.Track(instanceID, read)
}

// Hydrate seeds every tracked instance from the snapshot store, in
// Track order. Instances without a stored snapshot keep their defaults.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	s.mu.Lock()
	ids := append([]string(nil), s.tracked...)
	s.mu.Unlock()

	h := persistence.NewHydrator(s.snapshots, s, s.seedFor, s.logger)
	return h.HydrateAll(ctx, ids...)
}

func (s *Store) seedFor(instanceID string, snap domain.Snapshot) domain.Action {
	s.mu.Lock()
	seed := s.seeds[instanceID]
	s.mu.Unlock()
	return seed(instanceID, snap)
}

// RunCheckpointer persists tracked instances on every change until ctx
// is done, flushing one final time on the way out. It blocks; run it on
// its own goroutine. Returns immediately without WithStateStore.
func (s *Store) RunCheckpointer(ctx context.Context) {
	if s.checkpointer == nil {
		return
	}
	s.checkpointer.Run(ctx, s)
}

// State returns a snapshot of the global state tree.
func (s *Store) State() domain.State {
	return s.runtime.State()
}

// Keys returns the mounted slice keys in mount order.
func (s *Store) Keys() []string {
	return s.runtime.Keys()
}

// Subscribe registers a change listener, invoked synchronously after
// each state change. The returned func cancels the subscription.
func (s *Store) Subscribe(fn func(domain.State)) func() {
	cancel := s.runtime.Subscribe(fn)
	s.recorder.SetSubscribers(s.runtime.Subscribers())
	return func() {
		cancel()
		s.recorder.SetSubscribers(s.runtime.Subscribers())
	}
}
