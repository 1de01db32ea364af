package ports

import "github.com/latticekit/lattice/pkg/domain"

// Dispatcher consumes actions from any caller (UI, effect coordinator,
// transport adapter) and applies them through the reducer tree.
type Dispatcher interface {
	Dispatch(a domain.Action)
}

// StateSource exposes read access to the global state tree.
type StateSource interface {
	State() domain.State
}
