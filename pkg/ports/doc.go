/*
Package ports defines the boundary interfaces of the lattice core.

The core is pure: it never performs I/O of its own. Adapters implement
these interfaces to supply persistence (SnapshotStore) and to consume the
dispatch surface (Dispatcher). The tests subpackage provides reusable
contract suites adapters can run against their implementations.
*/
package ports
