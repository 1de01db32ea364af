package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer returns a function that renders markdown using
// glamour, auto-detecting the terminal background.
func NewMarkdownRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
