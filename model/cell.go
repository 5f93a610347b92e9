package model

const (
	glyphAlive = '■'
	glyphDead  = '□'
)

// Cell is a single alive/dead unit of the grid. It is copied by value.
type Cell struct {
	alive bool
}

// NewCell creates a cell with the given state
func NewCell(alive bool) Cell {
	return Cell{alive: alive}
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

// SetAlive changes the state of the cell
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

// Glyph returns the display character for the cell's state
func (c Cell) Glyph() rune {
	if c.alive {
		return glyphAlive
	}
	return glyphDead
}
