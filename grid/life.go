package grid

import (
	"math/rand"

	"github.com/vispack/veckit/vecop"
)

// Life is a Game of Life board. Cells hold 0 (dead) or 1 (alive); the border
// ring is permanently dead, which keeps the neighbor sums free of wrap logic.
type Life struct {
	cur    *Grid[uint8]
	counts []uint8 // scratch neighbor counts, reused across steps
}

// NewLife returns an empty w by h board. Both dimensions must be at least 3
// so an interior exists.
func NewLife(w, h int) (*Life, error) {
	if w < 3 || h < 3 {
		return nil, ErrEmptyGrid
	}
	g, err := New[uint8](w, h)
	if err != nil {
		return nil, err
	}
	return &Life{cur: g, counts: make([]uint8, w*h)}, nil
}

// Grid exposes the current board.
func (l *Life) Grid() *Grid[uint8] { return l.cur }

// Randomize fills the interior with live cells at the given density in [0, 1].
func (l *Life) Randomize(rng *rand.Rand, density float64) {
	w, h := l.cur.w, l.cur.h
	l.cur.Fill(0)
	for y := 1; y < h-1; y++ {
		row := l.cur.Row(y)
		for x := 1; x < w-1; x++ {
			if rng.Float64() < density {
				row[x] = 1
			}
		}
	}
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	total := 0
	for _, v := range l.cur.cells {
		total += int(v)
	}
	return total
}

// Step advances the board one generation.
//
// Neighbor counts are accumulated by adding the eight shifted interior
// windows row by row over the flat buffer, then the rules are applied as a
// single pass: birth on exactly three neighbors, survival on two or three.
func (l *Life) Step() {
	w, h := l.cur.w, l.cur.h
	cells := l.cur.cells
	counts := l.counts
	vecop.Fill(counts, 0)

	// Eight neighbor offsets; the center window is excluded.
	offsets := [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	inner := w - 2
	for _, d := range offsets {
		dy, dx := d[0], d[1]
		for y := 1; y < h-1; y++ {
			dst := counts[y*w+1 : y*w+1+inner]
			src := cells[(y+dy)*w+1+dx : (y+dy)*w+1+dx+inner]
			vecop.Add(dst, src)
		}
	}

	for y := 1; y < h-1; y++ {
		row := cells[y*w+1 : y*w+1+inner]
		n := counts[y*w+1 : y*w+1+inner]
		for i, alive := range row {
			birth := n[i] == 3 && alive == 0
			survive := (n[i] == 2 || n[i] == 3) && alive == 1
			if birth || survive {
				row[i] = 1
			} else {
				row[i] = 0
			}
		}
	}
}
