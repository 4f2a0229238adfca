package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vispack/veckit/boids"
	"github.com/vispack/veckit/grid"
)

func TestRenderCells(t *testing.T) {
	g, err := grid.FromRows([][]uint8{
		{0, 1, 0},
		{1, 1, 1},
	})
	require.NoError(t, err)

	out := renderCells(g, '#', '.')
	assert.Equal(t, ".#.\n###\n", out)
}

func TestRenderMazeOverlaysPath(t *testing.T) {
	g, err := grid.FromRows([][]uint8{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	out := renderMaze(g, []grid.Point{{X: 1, Y: 1}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "###", lines[0])
	assert.Equal(t, "#*#", lines[1])
	assert.Equal(t, "###", lines[2])
}

func TestFirstCorridor(t *testing.T) {
	g, err := grid.FromRows([][]uint8{
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	start, ok := firstCorridor(g, false)
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, start)

	goal, ok := firstCorridor(g, true)
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 3, Y: 1}, goal)
}

func TestFlockStats(t *testing.T) {
	f, err := boids.NewFlock(10, 100, 100, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	meanSpeed, order := flockStats(f)
	// Agents are seeded with unit-speed headings.
	assert.InDelta(t, 1.0, meanSpeed, 1e-9)
	assert.GreaterOrEqual(t, order, 0.0)
	assert.LessOrEqual(t, order, 1.0)

	// Aligned headings polarize completely.
	for i := range f.VX {
		f.VX[i], f.VY[i] = 2, 0
	}
	meanSpeed, order = flockStats(f)
	assert.InDelta(t, 2.0, meanSpeed, 1e-9)
	assert.InDelta(t, 1.0, order, 1e-9)
}

func TestWritePGM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pgm")
	gray := []uint8{0, 128, 255, 64}
	require.NoError(t, writePGM(path, gray, 2, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P5\n2 2\n255\n"))
	assert.Equal(t, gray, []uint8(data[len(data)-4:]))
}
