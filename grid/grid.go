package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a rows×cols Grid with the given Start, End and walls.
// Returns ErrEmptyGrid if either dimension is not positive, ErrInvalidLayout
// if the board exceeds MaxCells, start == end or either endpoint is out of
// bounds, and ErrOutOfBounds if
// a wall lies outside the board. A wall placed on Start or End is dropped:
// the role wins.
// Complexity: O(R×C + W) time, O(R×C) memory.
func New(rows, cols int, start, end Position, walls ...Position) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d grid exceeds %d cells", ErrInvalidLayout, rows, cols, MaxCells)
	}
	g := &Grid{rows: rows, cols: cols, start: start, end: end}
	if err := g.validateEndpoints(); err != nil {
		return nil, err
	}
	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		g.cells[i].Pos = g.Position(i)
	}
	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %v on %dx%d grid", ErrOutOfBounds, w, rows, cols)
		}
		g.cells[g.Index(w)].Role = Wall
	}
	g.cells[g.Index(start)].Role = Start
	g.cells[g.Index(end)].Role = End

	return g, nil
}

// NewWithOptions constructs a Grid from an Options value.
func NewWithOptions(opts Options) (*Grid, error) {
	return New(opts.Rows, opts.Cols, opts.Start, opts.End, opts.Walls...)
}

// validateEndpoints checks Start/End against the board dimensions.
func (g *Grid) validateEndpoints() error {
	switch {
	case !g.InBounds(g.start):
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidLayout, g.start, g.rows, g.cols)
	case !g.InBounds(g.end):
		return fmt.Errorf("%w: end %v outside %dx%d grid", ErrInvalidLayout, g.end, g.rows, g.cols)
	case g.start == g.end:
		return fmt.Errorf("%w: start and end coincide at %v", ErrInvalidLayout, g.start)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the Start position.
func (g *Grid) Start() Position { return g.start }

// End returns the End position.
func (g *Grid) End() Position { return g.end }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether p lies within the board.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// The result is meaningless for out-of-bounds positions.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// CellAt returns a copy of the cell at p, or ErrOutOfBounds.
func (g *Grid) CellAt(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return g.cells[g.Index(p)], nil
}

// IsOpen reports whether p is in bounds and not a Wall.
func (g *Grid) IsOpen(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)].Role != Wall
}

// Cells returns a row-major copy of every cell.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Walls returns wall positions in row-major order.
func (g *Grid) Walls() []Position {
	var walls []Position
	for _, c := range g.cells {
		if c.Role == Wall {
			walls = append(walls, c.Pos)
		}
	}
	return walls
}

// AppendNeighbors appends to dst the in-bounds, non-wall neighbors of p in
// the fixed order right, down, left, up, and returns the extended slice.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	for _, d := range neighborOffsets {
		q := p.Add(d[0], d[1])
		if g.IsOpen(q) {
			dst = append(dst, q)
		}
	}
	return dst
}

// Options returns the layout of g as an Options value. Flags are not part
// of a layout.
func (g *Grid) Options() Options {
	return Options{Rows: g.rows, Cols: g.cols, Start: g.start, End: g.end, Walls: g.Walls()}
}

// Equal reports whether g and other have identical dimensions, roles and flags.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols || g.start != other.start || g.end != other.end {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Mark returns a copy of g with the Visited flag set on every position in
// visited and the OnPath flag set on every position in path. Existing flags
// are cleared first. Returns ErrOutOfBounds for any stray position.
// Complexity: O(R×C + V + P).
func (g *Grid) Mark(visited, path []Position) (*Grid, error) {
	out := g.ClearMarks()
	for _, p := range visited {
		if !out.InBounds(p) {
			return nil, fmt.Errorf("%w: visited %v", ErrOutOfBounds, p)
		}
		out.cells[out.Index(p)].Visited = true
	}
	for _, p := range path {
		if !out.InBounds(p) {
			return nil, fmt.Errorf("%w: path %v", ErrOutOfBounds, p)
		}
		out.cells[out.Index(p)].OnPath = true
	}
	return out, nil
}

// ClearMarks returns a copy of g with every Visited and OnPath flag reset.
func (g *Grid) ClearMarks() *Grid {
	out := g.clone()
	for i := range out.cells {
		out.cells[i].Visited = false
		out.cells[i].OnPath = false
	}
	return out
}

// clone deep-copies g.
func (g *Grid) clone() *Grid {
	out := *g
	out.cells = make([]Cell, len(g.cells))
	copy(out.cells, g.cells)
	return &out
}

// Fingerprint returns a compact key that identifies the layout of g:
// dimensions, endpoints and walls. Flags are ignored, so two snapshots that
// differ only in search marks share a fingerprint.
func (g *Grid) Fingerprint() string {
	var b strings.Builder
	b.Grow(32 + len(g.cells)/4)
	b.WriteString(strconv.Itoa(g.rows))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(g.cols))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(g.Index(g.start)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(g.Index(g.end)))
	b.WriteByte('|')
	// walls as a hex bitmap, 4 cells per digit
	const hex = "0123456789abcdef"
	var nibble byte
	for i, c := range g.cells {
		if c.Role == Wall {
			nibble |= 1 << (i % 4)
		}
		if i%4 == 3 || i == len(g.cells)-1 {
			b.WriteByte(hex[nibble])
			nibble = 0
		}
	}
	return b.String()
}
