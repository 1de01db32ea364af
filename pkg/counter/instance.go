package counter

import (
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/render"
	"github.com/latticekit/lattice/pkg/scope"
)

// Instance is one fully scoped counter: the output of running all four
// factories against a distinct (id, lens) pair. The id and lens are
// fixed at construction and immutable afterwards.
type Instance struct {
	ID   string
	Lens domain.Lens

	// Actions holds the bound action creators, keyed as in Templates.
	Actions map[string]scope.Creator

	// Selectors holds the globalized selector set, keyed as in Selectors.
	Selectors map[string]scope.GlobalSelector[any]

	reducer   scope.Reducer[State]
	component scope.Component[Props]
}

// New composes a counter instance scoped to id, living at lens in the
// global tree.
func New(id string, lens domain.Lens) *Instance {
	inst := &Instance{
		ID:        id,
		Lens:      lens,
		Actions:   scope.Actions(id, Templates()),
		Selectors: scope.GlobalizeAll(lens, DefaultState(), Selectors()),
		reducer:   scope.Reduce(id, Reduce),
	}
	inst.component = scope.Connect(inst.mapProps, View)
	return inst
}

// At is a convenience for instances stored under a top-level key equal
// to their id.
func At(id string) *Instance {
	return New(id, domain.NewLens(id))
}

// Reducer returns the instance-scoped reducer over the typed slice.
func (i *Instance) Reducer() scope.Reducer[State] {
	return i.reducer
}

// SliceReducer returns the reducer in the untyped shape the store
// registers, bootstrapping absent slices from the default state.
func (i *Instance) SliceReducer() domain.SliceReducer {
	return scope.Slice(DefaultState(), i.reducer)
}

// StateOf resolves the instance's slice from the global tree, falling
// back to the default state when the lens path is absent.
func (i *Instance) StateOf(state domain.State) State {
	v, ok := i.Lens.Get(state)
	if !ok {
		return DefaultState()
	}
	s, ok := v.(State)
	if !ok {
		return DefaultState()
	}
	return s
}

// Snapshot reads the instance's slice for persistence. The second
// return is false when the slice has never been written.
func (i *Instance) Snapshot(state domain.State) (domain.Snapshot, bool) {
	v, ok := i.Lens.Get(state)
	if !ok {
		return nil, false
	}
	s, ok := v.(State)
	if !ok {
		return nil, false
	}
	return s.Snapshot(), true
}

// Render instantiates the display component against the current state.
func (i *Instance) Render(state domain.State, dispatch scope.Dispatch) render.Fragment {
	return i.component.Render(state, dispatch)
}

func (i *Instance) mapProps(state domain.State, dispatch scope.Dispatch) Props {
	s := i.StateOf(state)
	return Props{
		Count:    s.Count,
		Color:    s.Color,
		Disabled: Disabled(s),
		Increment: func() {
			dispatch(i.Actions["increment"]())
		},
		Decrement: func() {
			dispatch(i.Actions["decrement"]())
		},
		SetColor: func(c Color) {
			dispatch(i.Actions["setColor"](c))
		},
	}
}
