package counter

import (
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/scope"
)

// Shared action constructors. Each takes the instance id explicitly;
// scope.Actions fixes the id so callers pass only the domain arguments.

// SetData replaces an instance's state wholesale. The effect layer
// dispatches it when a snapshot has been loaded.
func SetData(instanceID string, data any) domain.Action {
	return domain.Action{
		Type:    KindSetData,
		Payload: data,
		Meta:    domain.Meta{InstanceID: instanceID},
	}
}

// Increment raises the count by one.
func Increment(instanceID string) domain.Action {
	return domain.Action{Type: KindIncrement, Meta: domain.Meta{InstanceID: instanceID}}
}

// Decrement lowers the count by one.
func Decrement(instanceID string) domain.Action {
	return domain.Action{Type: KindDecrement, Meta: domain.Meta{InstanceID: instanceID}}
}

// SetColor changes the display color, leaving the count untouched.
func SetColor(instanceID string, c Color) domain.Action {
	return domain.Action{
		Type:    KindSetColor,
		Payload: c,
		Meta:    domain.Meta{InstanceID: instanceID},
	}
}

// Templates returns the shared constructor set, keyed by the prop name
// the view receives the bound creator under.
func Templates() map[string]scope.Template {
	return map[string]scope.Template{
		"setData": func(id string, args ...any) domain.Action {
			var data any
			if len(args) > 0 {
				data = args[0]
			}
			return SetData(id, data)
		},
		"increment": func(id string, _ ...any) domain.Action {
			return Increment(id)
		},
		"decrement": func(id string, _ ...any) domain.Action {
			return Decrement(id)
		},
		"setColor": func(id string, args ...any) domain.Action {
			if len(args) == 0 {
				return domain.Action{}
			}
			c, ok := args[0].(Color)
			if !ok {
				if s, isStr := args[0].(string); isStr {
					c = Color(s)
				}
			}
			return SetColor(id, c)
		},
	}
}
