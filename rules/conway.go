package rules

// Transition names what happens to a single cell between two generations.
type Transition int

const (
	StaysDead Transition = iota
	Underpopulation
	Survival
	Overpopulation
	Reproduction
)

func (t Transition) String() string {
	switch t {
	case Underpopulation:
		return "underpopulation"
	case Survival:
		return "survival"
	case Overpopulation:
		return "overpopulation"
	case Reproduction:
		return "reproduction"
	default:
		return "stays dead"
	}
}

/*
Classify applies Conway's Game of Life rules (B3/S23) to a cell.

  - alive with fewer than 2 neighbors dies
  - alive with 2 or 3 neighbors lives on
  - alive with more than 3 neighbors dies
  - dead with exactly 3 neighbors becomes alive
*/
func Classify(alive bool, neighbors int) Transition {
	if alive {
		switch {
		case neighbors < 2:
			return Underpopulation
		case neighbors <= 3:
			return Survival
		default:
			return Overpopulation
		}
	}
	if neighbors == 3 {
		return Reproduction
	}
	return StaysDead
}

// Next reports whether the cell is alive in the next generation.
func Next(alive bool, neighbors int) bool {
	t := Classify(alive, neighbors)
	return t == Survival || t == Reproduction
}
