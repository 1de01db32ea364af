package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/latticekit/lattice/internal/presentation/tui"
)

//go:embed pattern.md
var patternDoc string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the pattern guide",
	Run: func(cmd *cobra.Command, args []string) {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(patternDoc)
			return
		}

		renderMarkdown := tui.NewMarkdownRenderer()
		out, err := renderMarkdown(patternDoc)
		if err != nil {
			fmt.Print(patternDoc)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
