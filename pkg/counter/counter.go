// Package counter is the worked widget of the lattice pattern: a counter
// with a display color, written once and instantiated any number of
// times via pkg/scope.
package counter

import (
	"github.com/mitchellh/mapstructure"

	"github.com/latticekit/lattice/pkg/domain"
)

// Color is the counter's display color.
type Color string

const (
	Green Color = "green"
	Red   Color = "red"
	Blue  Color = "blue"
)

// Colors returns the fixed option set, in display order.
func Colors() []Color {
	return []Color{Green, Red, Blue}
}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	switch c {
	case Green, Red, Blue:
		return true
	}
	return false
}

// State is one counter instance's slice of the global tree.
type State struct {
	Count int   `json:"count" mapstructure:"count"`
	Color Color `json:"color" mapstructure:"color"`
}

// DefaultState is the state a fresh instance starts from.
func DefaultState() State {
	return State{Count: 0, Color: Green}
}

// Snapshot flattens the state for persistence.
func (s State) Snapshot() domain.Snapshot {
	return domain.Snapshot{"count": s.Count, "color": string(s.Color)}
}

// Action kinds the counter reducer responds to.
const (
	KindSetData   domain.Kind = "SET_DATA"
	KindIncrement domain.Kind = "INCREMENT"
	KindDecrement domain.Kind = "DECREMENT"
	KindSetColor  domain.Kind = "SET_COLOR"
)

// Reduce is the shared base reducer. It has no identity of its own;
// instance scoping is applied by scope.Reduce. Pure: the input state is
// never mutated, unknown kinds return it unchanged.
func Reduce(s State, a domain.Action) State {
	switch a.Type {
	case KindSetData:
		return decodeState(a.Payload, s)
	case KindIncrement:
		s.Count++
		return s
	case KindDecrement:
		s.Count--
		return s
	case KindSetColor:
		if c, ok := decodeColor(a.Payload); ok {
			s.Color = c
		}
		return s
	default:
		return s
	}
}

// decodeState replaces the state wholesale from a SET_DATA payload.
// Payloads arrive as typed State in-process and as map[string]any over
// the wire; both decode onto the default state so missing fields keep
// their defaults.
func decodeState(payload any, cur State) State {
	switch v := payload.(type) {
	case State:
		return v
	case nil:
		return cur
	}
	next := DefaultState()
	if err := mapstructure.WeakDecode(payload, &next); err != nil {
		return cur
	}
	if !next.Color.Valid() {
		next.Color = DefaultState().Color
	}
	return next
}

func decodeColor(payload any) (Color, bool) {
	var c Color
	switch v := payload.(type) {
	case Color:
		c = v
	case string:
		c = Color(v)
	default:
		return "", false
	}
	if !c.Valid() {
		return "", false
	}
	return c, true
}
