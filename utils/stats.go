package utils

import (
	"slices"
	"time"
)

const historySize = 5

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	StartTime            time.Time

	history []string // recent grid hashes for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation, population, births, deaths int, duration time.Duration) {
	s.TotalGenerations = generation
	s.TotalBirths += births
	s.TotalDeaths += deaths
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Observe records a grid hash and reports whether it repeats one of the last
// three, which means the board is static or cycling with period at most 3.
func (s *Stats) Observe(hash string) bool {
	recent := s.history[max(0, len(s.history)-3):]
	stagnant := slices.Contains(recent, hash)

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return stagnant
}

// Status describes the board for the status line
func Status(population int, stagnant bool) string {
	switch {
	case population == 0:
		return "Extinct"
	case stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
