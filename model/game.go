package model

import "github.com/sheikhrachel/conway/rules"

// StepReport summarizes the changes made by one generation
type StepReport struct {
	Births int
	Deaths int
}

// GameOfLife owns the current grid and advances it one generation at a time
type GameOfLife struct {
	grid       *Grid
	size       int
	generation int
	last       StepReport
}

// NewGameOfLife creates a simulation on an all-dead grid at generation 0
func NewGameOfLife(size int) (*GameOfLife, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &GameOfLife{grid: grid, size: size}, nil
}

// Grid returns the current grid for seeding or display.
// It is replaced on every Step and must not be held across one.
func (g *GameOfLife) Grid() *Grid {
	return g.grid
}

// Size returns the grid dimension
func (g *GameOfLife) Size() int {
	return g.size
}

// Generation returns the number of completed steps
func (g *GameOfLife) Generation() int {
	return g.generation
}

// LastStep returns the births and deaths of the most recent Step
func (g *GameOfLife) LastStep() StepReport {
	return g.last
}

// Step computes the next generation from a frozen view of the current grid,
// then swaps it in. No cell of the new grid is read while it is being built.
func (g *GameOfLife) Step() {
	cur := g.grid
	next := &Grid{size: g.size, cells: make([][]Cell, g.size)}
	var report StepReport

	for row := range g.size {
		next.cells[row] = make([]Cell, g.size)
		for col := range g.size {
			alive := cur.cells[row][col].IsAlive()
			switch rules.Classify(alive, cur.liveNeighbors(row, col)) {
			case rules.Survival:
				next.cells[row][col].SetAlive(true)
			case rules.Reproduction:
				next.cells[row][col].SetAlive(true)
				report.Births++
			case rules.Underpopulation, rules.Overpopulation:
				report.Deaths++
			}
		}
	}

	g.grid = next
	g.last = report
	g.generation++
}
