// Package tui paints render fragments on a terminal.
package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/latticekit/lattice/pkg/render"
)

// Painter turns fragments into ANSI-colored lines.
type Painter struct {
	profile termenv.Profile
}

// NewPainter detects the terminal's color profile.
func NewPainter() *Painter {
	return &Painter{profile: termenv.ColorProfile()}
}

// colorCodes maps widget color names to ANSI foregrounds.
var colorCodes = map[string]string{
	"green": "2",
	"red":   "1",
	"blue":  "4",
}

// Paint renders one fragment. Text is colored with the fragment's
// selected color when one of its select elements carries a known value.
func (p *Painter) Paint(f render.Fragment) string {
	fg := ""
	for _, el := range f {
		if el.Kind == render.KindSelect {
			if code, ok := colorCodes[el.Selected]; ok {
				fg = code
			}
		}
	}

	var b strings.Builder
	for _, el := range f {
		switch el.Kind {
		case render.KindText:
			s := termenv.String(el.Text)
			if fg != "" {
				s = s.Foreground(p.profile.Color(fg))
			}
			b.WriteString(s.String())
		case render.KindButton:
			label := "[ " + el.Text + " ]"
			s := termenv.String(label)
			if el.Disabled {
				s = s.Faint()
			}
			b.WriteString(" ")
			b.WriteString(s.String())
		case render.KindSelect:
			b.WriteString(" (")
			for i, opt := range el.Options {
				if i > 0 {
					b.WriteString(" | ")
				}
				s := termenv.String(opt)
				if code, ok := colorCodes[opt]; ok {
					s = s.Foreground(p.profile.Color(code))
				}
				if opt == el.Selected {
					s = s.Bold()
				}
				b.WriteString(s.String())
			}
			b.WriteString(")")
		}
	}
	return b.String()
}
