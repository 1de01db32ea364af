// Package render defines the fragment model views emit.
//
// A Fragment is pure data: a flat list of elements describing what the
// host should show and which callbacks to invoke on interaction.
// Painting a fragment (terminal, HTTP, tests) is an adapter concern.
package render

// ElementKind discriminates the element variants.
type ElementKind string

const (
	KindText   ElementKind = "text"
	KindButton ElementKind = "button"
	KindSelect ElementKind = "select"
)

// Element is one node of a fragment.
type Element struct {
	Kind     ElementKind
	Text     string
	Disabled bool

	// Press is invoked when a button element is activated.
	Press func()

	// Options, Selected and Select apply to select elements.
	Options  []string
	Selected string
	Select   func(string)
}

// Fragment is an ordered list of elements.
type Fragment []Element

// Text builds a text element.
func Text(s string) Element {
	return Element{Kind: KindText, Text: s}
}

// Button builds a button element with a press callback.
func Button(label string, press func()) Element {
	return Element{Kind: KindButton, Text: label, Press: press}
}

// DisabledButton builds a button that renders but cannot be pressed.
func DisabledButton(label string) Element {
	return Element{Kind: KindButton, Text: label, Disabled: true}
}

// Select builds a select element over a fixed option set.
func Select(options []string, selected string, sel func(string)) Element {
	return Element{Kind: KindSelect, Options: options, Selected: selected, Select: sel}
}
