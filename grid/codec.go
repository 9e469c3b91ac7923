package grid

import (
	"fmt"
	"strings"
)

// ASCII map symbols.
const (
	SymbolEmpty   = '.'
	SymbolWall    = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolVisited = 'o'
	SymbolPath    = '*'
)

// Parse builds a Grid from an ASCII map, one line per row. Surrounding
// whitespace on each line and blank leading/trailing lines are ignored.
// 'o' and '*' mark Empty cells as Visited or OnPath.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, or
// ErrInvalidLayout when Start or End is missing or repeated.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return nil, ErrEmptyGrid
	}
	rows := len(lines)
	cols := len(strings.TrimSpace(lines[0]))

	var (
		start, end      []Position
		walls           []Position
		visited, onPath []Position
	)
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			p := Position{Row: r, Col: c}
			switch line[c] {
			case SymbolEmpty:
			case SymbolWall:
				walls = append(walls, p)
			case SymbolStart:
				start = append(start, p)
			case SymbolEnd:
				end = append(end, p)
			case SymbolVisited:
				visited = append(visited, p)
			case SymbolPath:
				onPath = append(onPath, p)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, line[c], p)
			}
		}
	}
	if len(start) != 1 {
		return nil, fmt.Errorf("%w: want exactly one %c, found %d", ErrInvalidLayout, SymbolStart, len(start))
	}
	if len(end) != 1 {
		return nil, fmt.Errorf("%w: want exactly one %c, found %d", ErrInvalidLayout, SymbolEnd, len(end))
	}

	g, err := New(rows, cols, start[0], end[0], walls...)
	if err != nil {
		return nil, err
	}
	if len(visited) == 0 && len(onPath) == 0 {
		return g, nil
	}
	return g.Mark(visited, onPath)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders g as an ASCII map accepted by Parse. Roles take precedence
// over flags, and OnPath over Visited. Rows are separated by '\n' with no
// trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for i, c := range g.cells {
		if i > 0 && i%g.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(c.Symbol())
	}
	return b.String()
}

// Symbol returns the ASCII map character for c.
func (c Cell) Symbol() byte {
	switch {
	case c.Role == Start:
		return SymbolStart
	case c.Role == End:
		return SymbolEnd
	case c.Role == Wall:
		return SymbolWall
	case c.OnPath:
		return SymbolPath
	case c.Visited:
		return SymbolVisited
	}
	return SymbolEmpty
}
