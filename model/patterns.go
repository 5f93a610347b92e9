package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a small rectangle of cell states that can be stamped onto a grid
type Pattern struct {
	Name  string
	Cells [][]bool
}

var (
	// Block is a 2x2 still life
	Block = Pattern{
		Name: "block",
		Cells: [][]bool{
			{true, true},
			{true, true},
		},
	}

	// Blinker is a period 2 oscillator, horizontal phase
	Blinker = Pattern{
		Name:  "blinker",
		Cells: [][]bool{{true, true, true}},
	}

	// Glider travels one cell diagonally every 4 generations
	Glider = Pattern{
		Name: "glider",
		Cells: [][]bool{
			{false, true, false},
			{false, false, true},
			{true, true, true},
		},
	}

	patterns = map[string]Pattern{
		Block.Name:   Block,
		Blinker.Name: Blinker,
		Glider.Name:  Glider,
	}
)

// Height returns the number of rows in the pattern
func (p Pattern) Height() int {
	return len(p.Cells)
}

// Width returns the length of the longest row in the pattern
func (p Pattern) Width() (w int) {
	for _, row := range p.Cells {
		w = max(w, len(row))
	}
	return
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, errors.Errorf("[PatternByName] unknown pattern %q, expected one of %s",
			name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place stamps p onto the grid with its top-left corner at (row, col).
// Nothing is written unless the whole pattern fits.
func (g *Grid) Place(p Pattern, row, col int) error {
	if p.Height() == 0 {
		return nil
	}
	if !g.inBounds(row, col) || !g.inBounds(row+p.Height()-1, col+p.Width()-1) {
		return errors.Wrapf(ErrOutOfBounds, "[Grid.Place] %s (%dx%d) at (%d,%d) does not fit %dx%d grid",
			p.Name, p.Height(), p.Width(), row, col, g.size, g.size)
	}
	for r, cells := range p.Cells {
		for c, alive := range cells {
			g.cells[row+r][col+c].SetAlive(alive)
		}
	}
	return nil
}

// PlaceCentered stamps p in the middle of the grid
func (g *Grid) PlaceCentered(p Pattern) error {
	return g.Place(p, (g.size-p.Height())/2, (g.size-p.Width())/2)
}
