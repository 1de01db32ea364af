package domain

// Lens is a composable descriptor of a path into the global state tree.
// It supports reading a sub-value and producing an updated tree with the
// sub-value replaced. The path is fixed at construction and must be
// treated as immutable afterwards.
type Lens struct {
	path []string
}

// NewLens builds a lens from a path of map keys, outermost first.
func NewLens(path ...string) Lens {
	p := make([]string, len(path))
	copy(p, path)
	return Lens{path: p}
}

// Append returns a new lens focused one level deeper.
func (l Lens) Append(key string) Lens {
	p := make([]string, 0, len(l.path)+1)
	p = append(p, l.path...)
	p = append(p, key)
	return Lens{path: p}
}

// Path returns a copy of the lens path.
func (l Lens) Path() []string {
	p := make([]string, len(l.path))
	copy(p, l.path)
	return p
}

// Get resolves the lens against the tree. The second return is false
// when any segment of the path is missing or not an interior map.
func (l Lens) Get(s State) (any, bool) {
	var cur any = map[string]any(s)
	for _, key := range l.path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set returns a new tree with the focused sub-value replaced. Interior
// maps along the path are copied; missing interior nodes are created.
// The input tree is never mutated.
func (l Lens) Set(s State, value any) State {
	if len(l.path) == 0 {
		if m, ok := asMap(value); ok {
			return State(m)
		}
		return s
	}
	return State(setPath(map[string]any(s), l.path, value))
}

func setPath(m map[string]any, path []string, value any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if len(path) == 1 {
		out[path[0]] = value
		return out
	}
	child, ok := asMap(out[path[0]])
	if !ok {
		child = map[string]any{}
	}
	out[path[0]] = setPath(child, path[1:], value)
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case State:
		return map[string]any(m), true
	default:
		return nil, false
	}
}
