package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vispack/veckit/grid"
)

func init() {
	rootCmd.AddCommand(newLifeCmd())
}

func newLifeCmd() *cobra.Command {
	var (
		width   int
		height  int
		steps   int
		density float64
		show    bool
	)
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Run Conway's Game of Life",
		Long: `Runs the Game of Life on a dead-border grid seeded with random live
cells and reports the population per step.

Example:
  vecctl life --width 60 --height 20 --steps 50 --show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLife(width, height, steps, density, show)
		},
	}
	cmd.Flags().IntVar(&width, "width", 60, "Grid width")
	cmd.Flags().IntVar(&height, "height", 20, "Grid height")
	cmd.Flags().IntVar(&steps, "steps", 50, "Number of generations")
	cmd.Flags().Float64Var(&density, "density", 0.2, "Initial live-cell density")
	cmd.Flags().BoolVar(&show, "show", false, "Print the final grid as ASCII")
	return cmd
}

func runLife(width, height, steps int, density float64, show bool) error {
	l, err := grid.NewLife(width, height)
	if err != nil {
		return fmt.Errorf("failed to create grid: %w", err)
	}
	l.Randomize(rand.New(rand.NewSource(seed)), density)

	populations := make([]int, 0, steps+1)
	populations = append(populations, l.Population())
	for i := 0; i < steps; i++ {
		l.Step()
		populations = append(populations, l.Population())
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"width":       width,
			"height":      height,
			"steps":       steps,
			"populations": populations,
		})
	}

	printInfo("population: %d -> %d after %d steps\n",
		populations[0], populations[len(populations)-1], steps)
	if show {
		printInfo("%s", renderCells(l.Grid(), '#', '.'))
	}
	return nil
}

// renderCells draws a uint8 grid with one rune per cell, nonzero cells using
// the live rune.
func renderCells(g *grid.Grid[uint8], live, dead rune) string {
	var sb strings.Builder
	for y := 0; y < g.H(); y++ {
		for _, c := range g.Row(y) {
			if c != 0 {
				sb.WriteRune(live)
			} else {
				sb.WriteRune(dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
