package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// RowSink receives the glyphs of one grid row during Render
type RowSink func(row int, glyphs []rune)

// Grid is a fixed-size square board of cells indexed by (row, col)
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid creates a size x size grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] size must be positive, got %d", size)
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}, nil
}

// Size returns the width and height of the grid
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) outside %dx%d grid", op, row, col, g.size, g.size)
	}
	return nil
}

// Cell returns a copy of the cell at (row, col)
func (g *Grid) Cell(row, col int) (Cell, error) {
	if err := g.checkBounds("Grid.Cell", row, col); err != nil {
		return Cell{}, err
	}
	return g.cells[row][col], nil
}

// SetCell sets the cell at (row, col) to alive or dead
func (g *Grid) SetCell(row, col int, alive bool) error {
	if err := g.checkBounds("Grid.SetCell", row, col); err != nil {
		return err
	}
	g.cells[row][col].SetAlive(alive)
	return nil
}

// CountLiveNeighbors counts the live cells in the Moore neighborhood of
// (row, col). Neighbors outside the grid are skipped, there is no wraparound.
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if err := g.checkBounds("Grid.CountLiveNeighbors", row, col); err != nil {
		return 0, err
	}
	return g.liveNeighbors(row, col), nil
}

// liveNeighbors assumes (row, col) is in bounds.
func (g *Grid) liveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c].IsAlive() {
				count++
			}
		}
	}

	return count
}

// Randomize makes each cell alive with probability 0.5
func (g *Grid) Randomize() {
	for row := range g.size {
		for col := range g.size {
			g.cells[row][col].SetAlive(rand.IntN(2) == 1)
		}
	}
}

// RandomizeWith is Randomize drawing from the given source, for reproducible boards
func (g *Grid) RandomizeWith(r *rand.Rand) {
	for row := range g.size {
		for col := range g.size {
			g.cells[row][col].SetAlive(r.IntN(2) == 1)
		}
	}
}

// Render hands each row's glyphs to sink, top to bottom
func (g *Grid) Render(sink RowSink) {
	for row := range g.size {
		glyphs := make([]rune, g.size)
		for col := range g.size {
			glyphs[col] = g.cells[row][col].Glyph()
		}
		sink(row, glyphs)
	}
}

// String renders the grid with one space between glyphs and one row per line
func (g *Grid) String() string {
	var b strings.Builder
	g.Render(func(_ int, glyphs []rune) {
		for i, glyph := range glyphs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(glyph)
		}
		b.WriteByte('\n')
	})
	return b.String()
}

// CountLiving returns the total number of living cells
func (g *Grid) CountLiving() (count int) {
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col].IsAlive() {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.size)
	for row := range g.size {
		for col := range g.size {
			buf[col] = 0
			if g.cells[row][col].IsAlive() {
				buf[col] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Clone returns a deep copy that shares no cells with g
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.size)
	for i := range cells {
		cells[i] = make([]Cell, g.size)
		copy(cells[i], g.cells[i])
	}
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}
