// Package runtime holds the state container: a single owned state tree,
// serialized dispatch over registered slice reducers, and synchronous
// change notification.
package runtime

import (
	"reflect"
	"sync"

	"github.com/latticekit/lattice/pkg/domain"
)

type slice struct {
	key    string
	lens   domain.Lens
	reduce domain.SliceReducer
}

// Store applies actions to the global state tree, one at a time, in
// dispatch order. Reducers run under the store lock and must not block
// or perform I/O; subscribers are invoked synchronously after the new
// tree has been swapped in.
type Store struct {
	mu     sync.Mutex
	state  domain.State
	slices []slice

	subMu   sync.Mutex
	subs    map[int]func(domain.State)
	nextSub int
}

// New creates a store with an empty state tree.
func New() *Store {
	return &Store{
		state: domain.NewState(),
		subs:  make(map[int]func(domain.State)),
	}
}

// Register adds a slice reducer at the given lens. Reducers are applied
// in registration order; keys must be distinct.
func (s *Store) Register(key string, lens domain.Lens, r domain.SliceReducer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slices = append(s.slices, slice{key: key, lens: lens, reduce: r})
}

// Keys returns the registered slice keys in registration order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.slices))
	for _, sl := range s.slices {
		keys = append(keys, sl.key)
	}
	return keys
}

// Dispatch runs the action through every registered slice reducer and
// returns the resulting tree. Slices whose reducer returns an unchanged
// value keep their existing leaf; when no slice changes, the tree is
// returned as-is and subscribers are not notified.
func (s *Store) Dispatch(a domain.Action) domain.State {
	s.mu.Lock()
	next := s.state
	changed := false
	for _, sl := range s.slices {
		cur, _ := sl.lens.Get(next)
		out := sl.reduce(cur, a)
		if reflect.DeepEqual(cur, out) {
			continue
		}
		next = sl.lens.Set(next, out)
		changed = true
	}
	if changed {
		s.state = next
	}
	s.mu.Unlock()

	if changed {
		s.notify(next)
	}
	return next
}

// State returns the current tree. The tree is copy-on-write: it is
// never mutated after publication, so the snapshot is safe to read
// without further copying.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a change listener and returns its cancel func.
// Listeners run on the dispatching goroutine and should hand off real
// work instead of doing it inline.
func (s *Store) Subscribe(fn func(domain.State)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Subscribers returns the number of active listeners.
func (s *Store) Subscribers() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}

func (s *Store) notify(state domain.State) {
	s.subMu.Lock()
	fns := make([]func(domain.State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
