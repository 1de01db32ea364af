/*
Package lattice is a small unidirectional-data-flow state container built
around instance-scoped state slices.

Widget logic (a reducer, selectors, a view) is written once with no
identity of its own. Identity is injected at composition time: each
instance gets a distinct id and a lens into the global state tree, and the
factories in pkg/scope produce the instance-bound variants of the shared
logic. N instances of the same widget share one implementation while
keeping their state, actions and rendering fully independent.

# Usage

Compose instances and mount them on a store:

	store := lattice.New()

	a := counter.At("counter-a")
	b := counter.At("counter-b")
	store.Mount(a.ID, a.Lens, a.SliceReducer())
	store.Mount(b.ID, b.Lens, b.SliceReducer())

	store.Dispatch(a.Actions["increment"]())
	store.Dispatch(counter.SetColor(b.ID, counter.Red))

Actions are plain values tagged with their instance id; a reducer only
sees actions tagged for its own instance. Reads go through globalized
selectors:

	count := a.Selectors["count"](store.State())

Rendering binds the current state and the dispatch function to a pure
view:

	fragment := a.Render(store.State(), store.Dispatch)

Persistence, transport and terminal painting live in pkg/persistence,
pkg/adapters and internal/presentation; the core neither initiates nor
awaits I/O.
*/
package lattice
