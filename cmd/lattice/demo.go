package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/latticekit/lattice"
	"github.com/latticekit/lattice/internal/presentation/tui"
	"github.com/latticekit/lattice/pkg/counter"
	"github.com/latticekit/lattice/pkg/render"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the two-counter walkthrough",
	Long:  `Mounts two independent counter instances on one store and walks through a dispatch sequence showing that they never observe each other's actions.`,
	Run: func(cmd *cobra.Command, args []string) {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
		}

		store := lattice.New()
		one := counter.At("counter-1")
		two := counter.At("counter-2")
		store.Mount(one.ID, one.Lens, one.SliceReducer())
		store.Mount(two.ID, two.Lens, two.SliceReducer())

		painter := tui.NewPainter()
		paint := func(caption string) {
			fmt.Println(caption)
			state := store.State()
			fmt.Printf("  %-10s %s\n", one.ID+":", painter.Paint(one.Render(state, store.Dispatch)))
			fmt.Printf("  %-10s %s\n", two.ID+":", painter.Paint(two.Render(state, store.Dispatch)))
			fmt.Println()
		}

		paint("Initial state:")

		store.Dispatch(one.Actions["increment"]())
		paint("After increment on counter-1:")

		store.Dispatch(two.Actions["decrement"]())
		paint("After decrement on counter-2 (counter-1 unaffected):")

		store.Dispatch(counter.SetColor(one.ID, counter.Red))
		paint("After setColor(red) on counter-1:")

		// Interactions go through the rendered fragment's callbacks, the
		// same way a host UI would drive them.
		fragment := two.Render(store.State(), store.Dispatch)
		for _, el := range fragment {
			if el.Kind == render.KindButton && el.Text == "+" {
				el.Press()
			}
		}
		paint("After pressing the '+' button on counter-2's view:")
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
