package utils

import "time"

// Stats tracks population and throughput across a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	Density              float64 // percent of cells alive
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation of the given population on a board of cells
func (s *Stats) Update(generation, population, cells int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if generation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
