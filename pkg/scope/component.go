package scope

import (
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/render"
)

// Dispatch sends an action into the owning store.
type Dispatch func(domain.Action)

// View is a stateless display component: a pure function from props to
// a render fragment. It owns no state and performs no dispatch of its
// own; interaction happens only through callback props.
type View[P any] func(P) render.Fragment

// MapProps derives the view's props from global state and dispatch.
// This is where globalized selectors and bound action creators meet.
type MapProps[P any] func(domain.State, Dispatch) P

// Component is the binding between the store and a view. Instantiating
// it in a render pass means calling Render with the current state.
type Component[P any] struct {
	mapProps MapProps[P]
	view     View[P]
}

// Connect builds a component from a prop mapping and a view.
func Connect[P any](mapProps MapProps[P], view View[P]) Component[P] {
	return Component[P]{mapProps: mapProps, view: view}
}

// Render derives props from the current state and applies the view.
func (c Component[P]) Render(state domain.State, dispatch Dispatch) render.Fragment {
	return c.view(c.mapProps(state, dispatch))
}
