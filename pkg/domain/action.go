package domain

// Kind identifies the reducer branch an action selects.
type Kind string

// Meta carries the scoping metadata of an action.
// InstanceID ties the action to exactly one widget instance; an action
// with an empty InstanceID matches no scoped reducer (the guard fails
// closed, state is passed through unchanged).
type Meta struct {
	InstanceID string `json:"instanceId"`
}

// Action is an immutable record describing an intended state transition.
// Payload is deliberately loose: actions cross process boundaries (HTTP,
// MCP, persistence) as JSON, so typed decoding is the base reducer's job.
type Action struct {
	Type    Kind `json:"type"`
	Payload any  `json:"payload,omitempty"`
	Meta    Meta `json:"meta"`
}

// Scoped reports whether the action targets the given instance.
func (a Action) Scoped(instanceID string) bool {
	return a.Meta.InstanceID != "" && a.Meta.InstanceID == instanceID
}
