/*
Package domain contains the core value types of the lattice pattern:
actions, the global state tree, and lenses.

These types carry no behavior beyond pure reads and copy-on-write updates.
The dispatch mechanics live in the root lattice package; the per-widget
logic (reducers, selectors, views) lives in widget packages such as
pkg/counter, scoped to an instance via pkg/scope.
*/
package domain
