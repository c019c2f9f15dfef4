package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(0, 50, 100, 0)
	if s.AveragePopulation != 50 || s.Density != 50 || s.PeakPopulation != 50 {
		t.Fatalf("after first update: %+v", s)
	}

	s.Update(1, 150, 200, 500*time.Millisecond)
	if s.AveragePopulation != 60 {
		t.Fatalf("average = %v, want 60", s.AveragePopulation)
	}
	if s.PeakPopulation != 150 || s.ActiveCells != 150 || s.TotalGenerations != 1 {
		t.Fatalf("after second update: %+v", s)
	}
	if s.Density != 75 || s.GenerationsPerSecond != 2 {
		t.Fatalf("density = %v gen/sec = %v", s.Density, s.GenerationsPerSecond)
	}
}
