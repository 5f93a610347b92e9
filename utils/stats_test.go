package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 4, 2, 500*time.Millisecond)
	s.Update(2, 200, 1, 3, 250*time.Millisecond)

	if s.TotalGenerations != 2 || s.TotalBirths != 5 || s.TotalDeaths != 5 {
		t.Fatalf("stats = %+v", s)
	}
	if s.GenerationsPerSecond != 4 {
		t.Fatalf("GenerationsPerSecond = %v, want 4", s.GenerationsPerSecond)
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
}

func TestObserve(t *testing.T) {
	s := NewStats()
	for _, h := range []string{"a", "b", "c"} {
		if s.Observe(h) {
			t.Fatalf("%s reported stagnant", h)
		}
	}
	if !s.Observe("b") {
		t.Fatal("period 2 cycle not detected")
	}

	s = NewStats()
	for _, h := range []string{"a", "b", "c", "d"} {
		s.Observe(h)
	}
	if s.Observe("a") {
		t.Fatal("hash older than three frames reported stagnant")
	}
	if len(s.history) != historySize {
		t.Fatalf("history length = %d", len(s.history))
	}
}

func TestStatus(t *testing.T) {
	if got := Status(0, true); got != "Extinct" {
		t.Fatalf("Status(0) = %q", got)
	}
	if got := Status(5, true); got != "Stagnant" {
		t.Fatalf("Status(5, true) = %q", got)
	}
	if got := Status(5, false); got != "Active" {
		t.Fatalf("Status(5, false) = %q", got)
	}
}
