package domain

// State is the global state tree. Interior nodes are map[string]any;
// leaves are instance states owned by exactly one widget instance.
//
// State is treated as a single owned value: reducers and lens writes
// return a new tree and never mutate their input. Reads are snapshots.
type State map[string]any

// NewState returns an empty global state tree.
func NewState() State {
	return State{}
}

// Clone returns a copy of the tree. Interior maps are copied; leaf
// values are shared (leaves are themselves immutable by convention).
func (s State) Clone() State {
	return State(cloneTree(map[string]any(s)))
}

func cloneTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if child, ok := v.(map[string]any); ok {
			out[k] = cloneTree(child)
			continue
		}
		if child, ok := v.(State); ok {
			out[k] = cloneTree(map[string]any(child))
			continue
		}
		out[k] = v
	}
	return out
}
