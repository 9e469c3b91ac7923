// Package grid defines core types and options for the grid subpackage
// of github.com/katalvlaran/gridwalk.
package grid

import (
	"fmt"
)

// Position addresses a cell by row and column. It is a comparable value type.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by dr rows and dc columns.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns the L1 distance between p and q, which is the fewest
// 4-neighbor moves between them on an open board.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Adjacent reports whether q is one orthogonal step away from p.
func (p Position) Adjacent(q Position) bool {
	return p.Manhattan(q) == 1
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Role is the mutually exclusive classification of a cell.
type Role uint8

const (
	// Empty is an open, unremarkable cell.
	Empty Role = iota
	// Wall blocks movement.
	Wall
	// Start is where every search begins.
	Start
	// End is the search target.
	End
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Cell is a copy of one board square: its position, role and search flags.
type Cell struct {
	Pos     Position
	Role    Role
	Visited bool // discovered by the last applied search
	OnPath  bool // part of the last applied route
}

// Options describes a board to construct with NewWithOptions.
type Options struct {
	// Rows and Cols fix the board dimensions.
	Rows, Cols int
	// Start and End place the two mandatory endpoints.
	Start, End Position
	// Walls lists blocked cells. Entries on Start or End are ignored.
	Walls []Position
}

// Default board layout.
const (
	DefaultRows = 12
	DefaultCols = 24
)

// MaxCells bounds rows×cols for any board.
const MaxCells = 1 << 24

// DefaultOptions returns the stock session layout: a 12×24 board with
// Start at (2,2), End at (9,20) and no walls.
func DefaultOptions() Options {
	return Options{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Start: Position{Row: 2, Col: 2},
		End:   Position{Row: 9, Col: 20},
	}
}

// Grid is an immutable rows×cols board snapshot. Cells are stored row-major;
// use the accessor methods, which always hand out copies.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Position
}

// neighborOffsets is the fixed expansion order: right, down, left, up.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
