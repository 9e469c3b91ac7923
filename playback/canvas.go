package playback

import (
	"sync"

	"github.com/katalvlaran/gridwalk/grid"
)

// Canvas is a mutable view over a grid snapshot: a base board plus the
// visits and route delivered so far. Writers (a Player's callbacks) and a
// renderer may use it from different goroutines.
type Canvas struct {
	mu      sync.RWMutex
	base    *grid.Grid
	visited []grid.Position
	path    []grid.Position
	version uint64
}

// NewCanvas returns a Canvas showing g with no marks.
func NewCanvas(g *grid.Grid) *Canvas {
	c := &Canvas{}
	c.Load(g)
	return c
}

// Load replaces the base board and clears all marks.
func (c *Canvas) Load(g *grid.Grid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g != nil {
		g = g.ClearMarks()
	}
	c.base = g
	c.visited = nil
	c.path = nil
	c.version++
}

// Visit marks p as discovered. Positions off the board are ignored.
func (c *Canvas) Visit(p grid.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.base == nil || !c.base.InBounds(p) {
		return
	}
	c.visited = append(c.visited, p)
	c.version++
}

// Path marks the route. Positions off the board are dropped.
func (c *Canvas) Path(ps []grid.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.base == nil {
		return
	}
	c.path = c.path[:0]
	for _, p := range ps {
		if c.base.InBounds(p) {
			c.path = append(c.path, p)
		}
	}
	c.version++
}

// Bind returns callbacks for Player.Play that draw onto c.
func (c *Canvas) Bind() (onVisit func(grid.Position), onPath func([]grid.Position)) {
	return c.Visit, c.Path
}

// Base returns the unmarked board.
func (c *Canvas) Base() *grid.Grid {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.base
}

// Snapshot returns the board with every mark delivered so far applied.
// It returns nil if nothing was loaded.
func (c *Canvas) Snapshot() *grid.Grid {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.base == nil {
		return nil
	}
	g, err := c.base.Mark(c.visited, c.path)
	if err != nil {
		// unreachable: Visit and Path filter out-of-bounds positions
		return c.base
	}
	return g
}

// Progress reports how many visits have been drawn and whether the route
// has been drawn.
func (c *Canvas) Progress() (visited int, pathShown bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.visited), len(c.path) > 0
}

// Version increases on every change, so a renderer can skip redundant frames.
func (c *Canvas) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
