package counter

import "github.com/latticekit/lattice/pkg/scope"

// Local selectors read one instance's slice. They know nothing about the
// global tree; scope.Globalize lifts them through a lens.

// Count reads the current count.
func Count(s State) int {
	return s.Count
}

// CurrentColor reads the display color.
func CurrentColor(s State) Color {
	return s.Color
}

// Disabled reports whether the decrement control should be inert.
func Disabled(s State) bool {
	return s.Count <= 0
}

// Selectors returns the local selector set, keyed by the prop name the
// derived value is exposed under.
func Selectors() map[string]scope.Selector[State, any] {
	return map[string]scope.Selector[State, any]{
		"count":    func(s State) any { return Count(s) },
		"color":    func(s State) any { return CurrentColor(s) },
		"disabled": func(s State) any { return Disabled(s) },
	}
}
