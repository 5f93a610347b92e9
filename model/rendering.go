package model

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const clearSequence = "\033[H\033[2J"

// Renderer draws a grid together with a status header
type Renderer interface {
	Clear() error
	Display(g *Grid, header string) error
}

// TerminalRenderer writes plain text frames to Out
type TerminalRenderer struct {
	Out io.Writer
	// NoClear skips the ANSI clear sequence, for piped output.
	NoClear bool
}

// Clear moves the cursor home and clears the terminal
func (r *TerminalRenderer) Clear() error {
	if r.NoClear {
		return nil
	}
	if _, err := io.WriteString(r.Out, clearSequence); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to write clear sequence")
	}
	return nil
}

// Display prints the header, a blank line and then the grid
func (r *TerminalRenderer) Display(g *Grid, header string) error {
	if _, err := fmt.Fprintf(r.Out, "%s\n\n%s", header, g.String()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write frame")
	}
	return nil
}
