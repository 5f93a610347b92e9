// Package seed turns textual board descriptions into initial grid states.
//
// A board is given as one line per row, '1' for a live cell and anything else
// (canonically '0') for a dead one. Spaces are stripped before a line is read.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/model"
)

// ErrMalformedSeed is returned in strict mode when the input is not a clean size x size board.
var ErrMalformedSeed = errors.New("malformed seed")

// Options controls how seed text is interpreted
type Options struct {
	// Strict rejects characters other than '0' and '1', over-long lines and a
	// line count different from the grid size. Lenient parsing ignores all three.
	Strict bool
}

// normalize strips spaces and returns the line as cells, one per character
func normalize(line string) []rune {
	return []rune(strings.ReplaceAll(strings.TrimRight(line, "\r\n"), " ", ""))
}

func validate(lines []string, size int) error {
	if len(lines) != size {
		return errors.Wrapf(ErrMalformedSeed, "[seed.validate] got %d lines, want %d", len(lines), size)
	}
	for i, line := range lines {
		cells := normalize(line)
		if len(cells) > size {
			return errors.Wrapf(ErrMalformedSeed, "[seed.validate] line %d has %d cells, want at most %d", i+1, len(cells), size)
		}
		for col, ch := range cells {
			if ch != '0' && ch != '1' {
				return errors.Wrapf(ErrMalformedSeed, "[seed.validate] line %d column %d: unexpected %q", i+1, col+1, ch)
			}
		}
	}
	return nil
}

// Apply sets the cells of g from lines, row i from line i. In strict mode the
// whole input is validated before any cell is written.
func Apply(g *model.Grid, lines []string, opts Options) error {
	size := g.Size()
	if opts.Strict {
		if err := validate(lines, size); err != nil {
			return err
		}
	}

	for row, line := range lines {
		if row >= size {
			break
		}
		cells := normalize(line)
		for col := 0; col < min(len(cells), size); col++ {
			if cells[col] != '1' {
				continue
			}
			if err := g.SetCell(row, col, true); err != nil {
				return errors.Wrapf(err, "[seed.Apply] row %d", row)
			}
		}
	}
	return nil
}

// Read consumes up to size lines from r and applies them to g
func Read(r io.Reader, g *model.Grid, opts Options) error {
	limit := g.Size()
	if opts.Strict {
		// one extra line so a board taller than the grid is caught
		limit++
	}
	lines, err := readLines(bufio.NewScanner(r), limit)
	if err != nil {
		return err
	}
	return Apply(g, lines, opts)
}

func readLines(sc *bufio.Scanner, n int) ([]string, error) {
	lines := make([]string, 0, n)
	for len(lines) < n && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "[seed.readLines] failed to read seed input")
	}
	return lines, nil
}

// Prompt runs the interactive setup: the user types "random" for a random
// board, or the first row of a manual board followed by the remaining rows.
func Prompt(in io.Reader, out io.Writer, g *model.Grid, opts Options) error {
	size := g.Size()
	fmt.Fprintln(out, "Conway's Game of Life:")
	fmt.Fprintln(out, "Enter 'Random' for random initialization")
	fmt.Fprintf(out, "Or enter the initial state manually (%d lines of %d characters each)\n", size, size)
	fmt.Fprintln(out, "Use 0 for dead cells and 1 for live cells")
	fmt.Fprint(out, "\nYour choice: ")

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return errors.Wrap(err, "[seed.Prompt] failed to read choice")
		}
		return errors.Wrap(io.ErrUnexpectedEOF, "[seed.Prompt] no input")
	}

	first := sc.Text()
	if strings.EqualFold(strings.TrimSpace(first), "random") {
		g.Randomize()
		fmt.Fprintln(out, "\nRandom grid generated!")
		return nil
	}

	fmt.Fprintf(out, "\nEnter %d lines of %d characters (0 or 1):\n", size, size)
	rest, err := readLines(sc, size-1)
	if err != nil {
		return err
	}
	if err = Apply(g, append([]string{strings.TrimSpace(first)}, rest...), opts); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nGrid initialized!")
	return nil
}
