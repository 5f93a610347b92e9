package seed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/model"
)

func newGrid(t *testing.T, size int) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(size)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestApplyLenient(t *testing.T) {
	g := newGrid(t, 4)
	lines := []string{
		"1 0 0 1",  // spaces stripped
		"01",       // short line, trailing cells dead
		"0x1y1111", // non-'1' is dead, beyond column 4 ignored
		"0000",
		"1111", // extra line ignored
	}
	if err := Apply(g, lines, Options{}); err != nil {
		t.Fatal(err)
	}

	want := "■ □ □ ■\n□ ■ □ □\n□ □ ■ □\n□ □ □ □\n"
	if got := g.String(); got != want {
		t.Fatalf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestApplyCountsCharactersNotBytes(t *testing.T) {
	g := newGrid(t, 3)
	if err := Apply(g, []string{"é1", "ü é 1", "ñ0ñ1"}, Options{}); err != nil {
		t.Fatal(err)
	}

	want := "□ ■ □\n□ □ ■\n□ □ □\n"
	if got := g.String(); got != want {
		t.Fatalf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestApplyMissingRowsStayDead(t *testing.T) {
	g := newGrid(t, 3)
	if err := Apply(g, []string{"111"}, Options{}); err != nil {
		t.Fatal(err)
	}
	if n := g.CountLiving(); n != 3 {
		t.Fatalf("CountLiving() = %d, want 3", n)
	}
}

func TestApplyStrict(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		ok    bool
	}{
		{"clean", []string{"010", "0 1 0", "000"}, true},
		{"short line allowed", []string{"01", "010", "0"}, true},
		{"bad char", []string{"010", "0x0", "000"}, false},
		{"multibyte char", []string{"010", "0é0", "000"}, false},
		{"too long", []string{"0100", "010", "000"}, false},
		{"too few lines", []string{"010", "010"}, false},
		{"too many lines", []string{"010", "010", "010", "010"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(t, 3)
			err := Apply(g, tt.lines, Options{Strict: true})
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMalformedSeed) {
				t.Fatalf("err = %v, want ErrMalformedSeed", err)
			}
			if g.CountLiving() != 0 {
				t.Fatal("rejected seed wrote cells")
			}
		})
	}
}

func TestValidateReportsOffendingCharacter(t *testing.T) {
	g := newGrid(t, 3)
	err := Apply(g, []string{"000", "0é0", "000"}, Options{Strict: true})
	if !errors.Is(err, ErrMalformedSeed) {
		t.Fatalf("err = %v, want ErrMalformedSeed", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "line 2 column 2") || !strings.Contains(msg, "'é'") {
		t.Fatalf("err = %q, want line 2 column 2 and 'é'", msg)
	}
}

func TestRead(t *testing.T) {
	g := newGrid(t, 3)
	if err := Read(strings.NewReader("010\n010\n010\n"), g, Options{Strict: true}); err != nil {
		t.Fatal(err)
	}
	if n := g.CountLiving(); n != 3 {
		t.Fatalf("CountLiving() = %d, want 3", n)
	}

	tall := newGrid(t, 2)
	if err := Read(strings.NewReader("01\n10\n11\n"), tall, Options{Strict: true}); !errors.Is(err, ErrMalformedSeed) {
		t.Fatalf("strict Read of a tall board err = %v, want ErrMalformedSeed", err)
	}
	if err := Read(strings.NewReader("01\n10\n11\n"), tall, Options{}); err != nil {
		t.Fatalf("lenient Read: %v", err)
	}
}

func TestPromptRandom(t *testing.T) {
	g := newGrid(t, 20)
	var out bytes.Buffer
	if err := Prompt(strings.NewReader("  RANDOM \n"), &out, g, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Random grid generated!") {
		t.Fatalf("output = %q", out.String())
	}
	if g.CountLiving() == 0 {
		t.Fatal("random prompt left the grid empty")
	}
}

func TestPromptManual(t *testing.T) {
	g := newGrid(t, 3)
	var out bytes.Buffer
	if err := Prompt(strings.NewReader("100\n010\n001\n"), &out, g, Options{}); err != nil {
		t.Fatal(err)
	}
	if got, want := g.String(), "■ □ □\n□ ■ □\n□ □ ■\n"; got != want {
		t.Fatalf("grid =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(out.String(), "Grid initialized!") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestPromptEmptyInput(t *testing.T) {
	g := newGrid(t, 3)
	if err := Prompt(strings.NewReader(""), &bytes.Buffer{}, g, Options{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}
