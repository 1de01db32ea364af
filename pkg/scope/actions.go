package scope

import "github.com/latticekit/lattice/pkg/domain"

// Template is a shared action constructor. It takes the instance id
// explicitly, followed by the action's domain arguments.
type Template func(instanceID string, args ...any) domain.Action

// Creator is an instance-bound action constructor: the instance id has
// been fixed, callers supply only the domain arguments.
type Creator func(args ...any) domain.Action

// Actions binds every template in the set to one instance id. The result
// has the same keys as the input; each creator tags its action with the
// bound id through the underlying template.
func Actions(instanceID string, templates map[string]Template) map[string]Creator {
	creators := make(map[string]Creator, len(templates))
	for name, tmpl := range templates {
		creators[name] = Bind(instanceID, tmpl)
	}
	return creators
}

// Bind partially applies a single template with the instance id.
func Bind(instanceID string, tmpl Template) Creator {
	return func(args ...any) domain.Action {
		return tmpl(instanceID, args...)
	}
}
