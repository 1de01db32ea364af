package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticekit/lattice/internal/runtime"
	"github.com/latticekit/lattice/pkg/counter"
	"github.com/latticekit/lattice/pkg/domain"
)

func mount(s *runtime.Store, id string) *counter.Instance {
	inst := counter.At(id)
	s.Register(inst.ID, inst.Lens, inst.SliceReducer())
	return inst
}

func TestStore_DispatchScenario(t *testing.T) {
	store := runtime.New()
	one := mount(store, "counter-1")
	two := mount(store, "counter-2")

	// counter-1 starts at the default {0, green}.
	assert.Equal(t, counter.DefaultState(), one.StateOf(store.State()))

	store.Dispatch(counter.Increment(one.ID))
	assert.Equal(t, counter.State{Count: 1, Color: counter.Green}, one.StateOf(store.State()))

	// counter-2's decrement is ignored by counter-1's reducer.
	store.Dispatch(counter.Decrement(two.ID))
	assert.Equal(t, counter.State{Count: 1, Color: counter.Green}, one.StateOf(store.State()))
	assert.Equal(t, counter.State{Count: -1, Color: counter.Green}, two.StateOf(store.State()))

	store.Dispatch(counter.SetColor(one.ID, counter.Red))
	assert.Equal(t, counter.State{Count: 1, Color: counter.Red}, one.StateOf(store.State()))
	assert.Equal(t, counter.Green, two.StateOf(store.State()).Color)
}

func TestStore_InstancesNeverObserveEachOther(t *testing.T) {
	store := runtime.New()
	a := mount(store, "a")
	b := mount(store, "b")

	for i := 0; i < 5; i++ {
		store.Dispatch(counter.Increment(a.ID))
	}

	assert.Equal(t, 5, a.StateOf(store.State()).Count)
	assert.Equal(t, 0, b.StateOf(store.State()).Count)
}

func TestStore_UntaggedActionChangesNothing(t *testing.T) {
	store := runtime.New()
	a := mount(store, "a")

	before := store.State()
	store.Dispatch(domain.Action{Type: counter.KindIncrement})

	assert.Equal(t, 0, a.StateOf(store.State()).Count)
	// No slice changed, so the tree itself is untouched.
	assert.Equal(t, before, store.State())
}

func TestStore_SubscribeNotifiesOnChange(t *testing.T) {
	store := runtime.New()
	a := mount(store, "a")

	var seen []domain.State
	cancel := store.Subscribe(func(s domain.State) {
		seen = append(seen, s)
	})
	defer cancel()

	store.Dispatch(counter.Increment(a.ID))
	require.Len(t, seen, 1)
	assert.Equal(t, 1, a.StateOf(seen[0]).Count)

	// An untagged action changes nothing and must not notify.
	store.Dispatch(domain.Action{Type: counter.KindIncrement})
	assert.Len(t, seen, 1)
}

func TestStore_SubscribeCancel(t *testing.T) {
	store := runtime.New()
	a := mount(store, "a")

	calls := 0
	cancel := store.Subscribe(func(domain.State) { calls++ })
	require.Equal(t, 1, store.Subscribers())

	cancel()
	assert.Equal(t, 0, store.Subscribers())

	store.Dispatch(counter.Increment(a.ID))
	assert.Equal(t, 0, calls)
}

func TestStore_Keys(t *testing.T) {
	store := runtime.New()
	mount(store, "x")
	mount(store, "y")

	assert.Equal(t, []string{"x", "y"}, store.Keys())
}
