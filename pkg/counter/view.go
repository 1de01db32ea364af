package counter

import (
	"strconv"

	"github.com/latticekit/lattice/pkg/render"
)

// Props is the flat prop set the display component receives: derived
// values from the selectors, callbacks from the bound action creators.
type Props struct {
	Count    int
	Color    Color
	Disabled bool

	Increment func()
	Decrement func()
	SetColor  func(Color)
}

// View is the stateless display component. It owns no state and never
// dispatches on its own; it only wires the callback props into the
// fragment's interactive elements.
func View(p Props) render.Fragment {
	options := make([]string, 0, len(Colors()))
	for _, c := range Colors() {
		options = append(options, string(c))
	}

	decrement := render.Button("-", p.Decrement)
	if p.Disabled {
		decrement = render.DisabledButton("-")
	}

	return render.Fragment{
		render.Text("Count: " + strconv.Itoa(p.Count)),
		decrement,
		render.Button("+", p.Increment),
		render.Select(options, string(p.Color), func(s string) {
			p.SetColor(Color(s))
		}),
	}
}
