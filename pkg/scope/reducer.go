package scope

import (
	"reflect"

	"github.com/latticekit/lattice/pkg/domain"
)

// Reducer is a pure transition function over a slice state S. It must
// not mutate its input; it returns the next state, which may be the
// input value unchanged.
type Reducer[S any] func(S, domain.Action) S

// Reduce scopes a base reducer to one instance. Actions tagged for the
// instance are delegated to base; every other action, including actions
// with no instance tag at all, passes state through unchanged.
func Reduce[S any](instanceID string, base Reducer[S]) Reducer[S] {
	return func(s S, a domain.Action) S {
		if !a.Scoped(instanceID) {
			return s
		}
		return base(s, a)
	}
}

// Slice adapts a typed reducer to the untyped leaf representation the
// store tree holds. An absent or foreign-typed leaf reduces from def,
// so a slice can bootstrap itself from its default state.
func Slice[S any](def S, r Reducer[S]) domain.SliceReducer {
	return func(v any, a domain.Action) any {
		s, ok := v.(S)
		if !ok {
			s = def
		}
		out := r(s, a)
		if !ok && reflect.DeepEqual(out, def) {
			// The leaf was absent and the action didn't move it off the
			// default: keep it absent so non-matching actions leave the
			// tree untouched.
			return v
		}
		return out
	}
}
