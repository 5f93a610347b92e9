package model

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrQuit is returned by Watch when the user asks to leave.
var ErrQuit = errors.New("quit requested")

var (
	aliveStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	deadStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// ScreenRenderer draws frames on a full-screen tcell terminal
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer initializes screen and takes ownership of it
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.Clear()
	return &ScreenRenderer{screen: screen}, nil
}

// Clear blanks the screen buffer
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Display draws the header lines at the top and the grid one blank line below
func (r *ScreenRenderer) Display(g *Grid, header string) error {
	lines := strings.Split(header, "\n")
	for y, line := range lines {
		for x, ch := range []rune(line) {
			r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Bold(true))
		}
	}
	offset := len(lines) + 1
	g.Render(func(row int, glyphs []rune) {
		for col, glyph := range glyphs {
			style := deadStyle
			if glyph == glyphAlive {
				style = aliveStyle
			}
			r.screen.SetContent(col*2, row+offset, glyph, nil, style)
		}
	})
	r.screen.Show()
	return nil
}

// Watch blocks until ctx is done or q, Esc or Ctrl-C is pressed, in which case it returns ErrQuit
func (r *ScreenRenderer) Watch(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go r.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return ErrQuit
				}
			case *tcell.EventResize:
				r.screen.Sync()
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return strings.ContainsRune("qQ", ev.Rune())
	}
	return false
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
