package model

// CycleDetector remembers the hashes of recent generations to spot still
// lifes and short oscillators
type CycleDetector struct {
	history []string
	size    int
}

// NewCycleDetector keeps the last size hashes (5 when size < 1)
func NewCycleDetector(size int) *CycleDetector {
	if size < 1 {
		size = 5
	}
	return &CycleDetector{size: size}
}

// Observe records g and returns the period of the cycle it closes, or 0
// when g differs from every remembered generation. A still life has period 1.
func (d *CycleDetector) Observe(g *Grid) (period int) {
	hash := g.GetGridHash()
	for i := len(d.history) - 1; i >= 0; i-- {
		if d.history[i] == hash {
			period = len(d.history) - i
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > d.size {
		d.history = d.history[1:]
	}
	return period
}

// Reset forgets all remembered generations
func (d *CycleDetector) Reset() {
	d.history = nil
}
