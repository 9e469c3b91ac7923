package grid

import "fmt"

// Component returns every open cell 4-connected to from, in breadth-first
// discovery order using the fixed right, down, left, up neighbor order.
// from itself comes first. A Wall yields an empty component.
// Returns ErrOutOfBounds if from is off the board.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Component(from Position) ([]Position, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, from, g.rows, g.cols)
	}
	if !g.IsOpen(from) {
		return []Position{}, nil
	}
	return g.flood(from, make([]bool, len(g.cells))), nil
}

// flood collects the open region around from, marking seen as it goes.
func (g *Grid) flood(from Position, seen []bool) []Position {
	seen[g.Index(from)] = true
	queue := []Position{from}
	nbrs := make([]Position, 0, len(neighborOffsets))

	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.AppendNeighbors(nbrs[:0], queue[qi])
		for _, q := range nbrs {
			if i := g.Index(q); !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}
	return queue
}

// Reachable reports whether b can be reached from a through open cells.
// Out-of-bounds or wall positions are never reachable.
func (g *Grid) Reachable(a, b Position) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	seen := make([]bool, len(g.cells))
	g.flood(a, seen)
	return seen[g.Index(b)]
}

// Components partitions all open cells into 4-connected regions, ordered by
// their first cell in row-major order.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Components() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	for i, c := range g.cells {
		if c.Role == Wall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(c.Pos, seen))
	}
	return comps
}
