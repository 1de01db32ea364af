package domain

// SliceReducer is the untyped reducer shape the store tree works with.
// The leaf value is nil when the slice has not been written yet; the
// reducer is expected to fall back to its default state in that case.
type SliceReducer func(leaf any, action Action) any

// Snapshot is the persisted form of one instance's slice: a flat map of
// field name to value, as it travels through JSON.
type Snapshot map[string]any
