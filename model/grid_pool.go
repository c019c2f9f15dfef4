package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid buffers between generations when the caller does
// not keep old generations around. A nil *GridPool allocates fresh grids.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get returns a dead grid of the requested dimensions
func (p *GridPool) Get(width, height int) *Grid {
	if p == nil {
		return newGrid(width, height)
	}
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put hands a grid back to the pool. The caller must not use it afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
