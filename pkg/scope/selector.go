package scope

import "github.com/latticekit/lattice/pkg/domain"

// Selector derives a read-only view from slice state.
type Selector[S, V any] func(S) V

// GlobalSelector derives a read-only view from the global state tree.
type GlobalSelector[V any] func(domain.State) V

// Globalize lifts a local selector through a lens. When the lens path is
// missing from the tree, or holds a value of the wrong type, the local
// selector is applied to def instead, so globalized selectors stay total.
func Globalize[S, V any](lens domain.Lens, def S, local Selector[S, V]) GlobalSelector[V] {
	return func(state domain.State) V {
		v, ok := lens.Get(state)
		if !ok {
			return local(def)
		}
		s, ok := v.(S)
		if !ok {
			return local(def)
		}
		return local(s)
	}
}

// GlobalizeAll lifts a named set of local selectors through one lens.
// The result has the same keys as the input.
func GlobalizeAll[S any](lens domain.Lens, def S, locals map[string]Selector[S, any]) map[string]GlobalSelector[any] {
	globals := make(map[string]GlobalSelector[any], len(locals))
	for name, local := range locals {
		globals[name] = Globalize(lens, def, local)
	}
	return globals
}
