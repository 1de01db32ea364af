/*
Package scope turns shared widget logic into instance-scoped logic.

A widget (reducer, selectors, view) is written once, with no identity of
its own. Scope injects identity at construction time: Actions binds shared
action templates to one instance id, Reduce guards a base reducer so it
only sees actions tagged for its instance, Globalize lifts slice-local
selectors to the global state tree through a lens, and Connect binds a
pure view to state and dispatch. Composing N independent instances is then
a matter of calling the factories with N distinct (id, lens) pairs.
*/
package scope
