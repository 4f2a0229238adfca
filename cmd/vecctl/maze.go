package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vispack/veckit/grid"
)

func init() {
	rootCmd.AddCommand(newMazeCmd())
}

func newMazeCmd() *cobra.Command {
	var (
		width      int
		height     int
		complexity float64
		density    float64
		solve      bool
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze and optionally solve it",
		Long: `Generates a maze by growing wall islands on an odd lattice and prints
it as ASCII. With --solve, the shortest path from the top-left corridor cell
to the bottom-right one is diffused out and overlaid.

Example:
  vecctl maze --width 41 --height 21 --solve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaze(width, height, complexity, density, solve)
		},
	}
	cmd.Flags().IntVar(&width, "width", 41, "Maze width (rounded down to odd)")
	cmd.Flags().IntVar(&height, "height", 21, "Maze height (rounded down to odd)")
	cmd.Flags().Float64Var(&complexity, "complexity", 0.75, "Island length ratio")
	cmd.Flags().Float64Var(&density, "density", 0.50, "Island count ratio")
	cmd.Flags().BoolVar(&solve, "solve", false, "Overlay the shortest path")
	return cmd
}

func runMaze(width, height int, complexity, density float64, solve bool) error {
	opts := grid.MazeOptions{Complexity: complexity, Density: density}
	m, err := grid.BuildMaze(width, height, opts, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to build maze: %w", err)
	}

	var path []grid.Point
	if solve {
		// Wall islands can cover the corners, so pick the corridor cells
		// closest to them.
		start, ok := firstCorridor(m, false)
		goal, ok2 := firstCorridor(m, true)
		if !ok || !ok2 {
			return fmt.Errorf("failed to solve maze: no corridor cells")
		}
		_, path, err = grid.SolveMaze(m, start, goal)
		if err != nil {
			return fmt.Errorf("failed to solve maze: %w", err)
		}
	}

	if jsonOut {
		out := map[string]interface{}{
			"width":  m.W(),
			"height": m.H(),
		}
		if solve {
			out["path"] = path
		}
		return printJSON(out)
	}

	printInfo("%s", renderMaze(m, path))
	if solve {
		printInfo("path length: %d\n", len(path))
	}
	return nil
}

// firstCorridor scans row-major for a corridor cell, backward when fromEnd is
// set.
func firstCorridor(m *grid.Grid[uint8], fromEnd bool) (grid.Point, bool) {
	cells := m.Cells()
	if fromEnd {
		for i := len(cells) - 1; i >= 0; i-- {
			if cells[i] == 0 {
				return grid.Point{X: i % m.W(), Y: i / m.W()}, true
			}
		}
	} else {
		for i, c := range cells {
			if c == 0 {
				return grid.Point{X: i % m.W(), Y: i / m.W()}, true
			}
		}
	}
	return grid.Point{}, false
}

// renderMaze draws walls as '#', corridors as spaces, and the path as '*'.
func renderMaze(m *grid.Grid[uint8], path []grid.Point) string {
	onPath := make(map[grid.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	var sb strings.Builder
	for y := 0; y < m.H(); y++ {
		for x, c := range m.Row(y) {
			switch {
			case onPath[grid.Point{X: x, Y: y}]:
				sb.WriteByte('*')
			case c != 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
