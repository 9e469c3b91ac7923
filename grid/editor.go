package grid

import (
	"fmt"
	"strings"
)

// EditMode selects what a cell click does.
type EditMode int

const (
	// ModeWall toggles walls.
	ModeWall EditMode = iota
	// ModeStart moves the Start cell.
	ModeStart
	// ModeEnd moves the End cell.
	ModeEnd
)

// String returns "wall", "start" or "end".
func (m EditMode) String() string {
	switch m {
	case ModeWall:
		return "wall"
	case ModeStart:
		return "start"
	case ModeEnd:
		return "end"
	}
	return fmt.Sprintf("EditMode(%d)", int(m))
}

// ParseEditMode maps "wall", "start" or "end" (any case) to an EditMode.
func ParseEditMode(s string) (EditMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall", "walls":
		return ModeWall, nil
	case "start":
		return ModeStart, nil
	case "end":
		return ModeEnd, nil
	}
	return 0, fmt.Errorf("grid: unknown edit mode %q", s)
}

// Apply performs the edit selected by mode at p, the way a cell click does.
func Apply(g *Grid, p Position, mode EditMode) (*Grid, error) {
	switch mode {
	case ModeWall:
		return ToggleWall(g, p)
	case ModeStart:
		return MoveStart(g, p)
	case ModeEnd:
		return MoveEnd(g, p)
	}
	return nil, fmt.Errorf("grid: unknown edit mode %d", int(mode))
}

// checkEdit validates the common preconditions of every editor operation.
func checkEdit(g *Grid, p Position) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return nil
}

// ToggleWall flips the cell at p between Empty and Wall and clears search
// flags. Toggling Start or End is a no-op that returns g itself.
func ToggleWall(g *Grid, p Position) (*Grid, error) {
	if err := checkEdit(g, p); err != nil {
		return nil, err
	}
	i := g.Index(p)
	switch g.cells[i].Role {
	case Start, End:
		return g, nil
	}
	out := g.ClearMarks()
	if out.cells[i].Role == Wall {
		out.cells[i].Role = Empty
	} else {
		out.cells[i].Role = Wall
	}
	return out, nil
}

// MoveStart relocates Start to p. The previous Start becomes Empty and a wall
// at p is overwritten. Moving onto End fails with ErrInvalidLayout; moving
// onto the current Start returns g itself.
func MoveStart(g *Grid, p Position) (*Grid, error) {
	if err := checkEdit(g, p); err != nil {
		return nil, err
	}
	if p == g.start {
		return g, nil
	}
	if p == g.end {
		return nil, fmt.Errorf("%w: start cannot move onto end %v", ErrInvalidLayout, p)
	}
	out := g.ClearMarks()
	out.cells[out.Index(out.start)].Role = Empty
	out.cells[out.Index(p)].Role = Start
	out.start = p
	return out, nil
}

// MoveEnd relocates End to p; see MoveStart.
func MoveEnd(g *Grid, p Position) (*Grid, error) {
	if err := checkEdit(g, p); err != nil {
		return nil, err
	}
	if p == g.end {
		return g, nil
	}
	if p == g.start {
		return nil, fmt.Errorf("%w: end cannot move onto start %v", ErrInvalidLayout, p)
	}
	out := g.ClearMarks()
	out.cells[out.Index(out.end)].Role = Empty
	out.cells[out.Index(p)].Role = End
	out.end = p
	return out, nil
}

// Reset returns a board of the same size and endpoints with no walls and no
// flags. Reset(Reset(g)) equals Reset(g). A nil grid yields nil.
func Reset(g *Grid) *Grid {
	if g == nil {
		return nil
	}
	out := g.clone()
	for i := range out.cells {
		out.cells[i].Visited = false
		out.cells[i].OnPath = false
		if out.cells[i].Role == Wall {
			out.cells[i].Role = Empty
		}
	}
	return out
}
