package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed layouts.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		start, end grid.Position
		walls      []grid.Position
		err        error
	}{
		{"ZeroRows", 0, 3, grid.Pos(0, 0), grid.Pos(0, 1), nil, grid.ErrEmptyGrid},
		{"NegativeCols", 3, -1, grid.Pos(0, 0), grid.Pos(0, 1), nil, grid.ErrEmptyGrid},
		{"StartEqualsEnd", 3, 3, grid.Pos(1, 1), grid.Pos(1, 1), nil, grid.ErrInvalidLayout},
		{"StartOutside", 3, 3, grid.Pos(3, 0), grid.Pos(1, 1), nil, grid.ErrInvalidLayout},
		{"EndOutside", 3, 3, grid.Pos(0, 0), grid.Pos(0, -1), nil, grid.ErrInvalidLayout},
		{"TooManyCells", 1 << 13, 1<<11 + 1, grid.Pos(0, 0), grid.Pos(0, 1), nil, grid.ErrInvalidLayout},
		{"ProductOverflows", 1 << 62, 4, grid.Pos(0, 0), grid.Pos(0, 1), nil, grid.ErrInvalidLayout},
		{"WallOutside", 3, 3, grid.Pos(0, 0), grid.Pos(2, 2), []grid.Position{grid.Pos(5, 5)}, grid.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols, tc.start, tc.end, tc.walls...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%v,%v) error = %v; want %v", tc.rows, tc.cols, tc.start, tc.end, err, tc.err)
			}
		})
	}
}

// TestNew_EmptyGridIsInvalidLayout checks the error hierarchy.
func TestNew_EmptyGridIsInvalidLayout(t *testing.T) {
	_, err := grid.New(0, 0, grid.Pos(0, 0), grid.Pos(0, 1))
	assert.ErrorIs(t, err, grid.ErrInvalidLayout)
}

// TestNew_RoleWinsOverWall checks that walls listed on Start/End are dropped.
func TestNew_RoleWinsOverWall(t *testing.T) {
	g, err := grid.New(2, 3, grid.Pos(0, 0), grid.Pos(1, 2),
		grid.Pos(0, 0), grid.Pos(1, 2), grid.Pos(0, 1), grid.Pos(0, 1))
	require.NoError(t, err)

	start, _ := g.CellAt(grid.Pos(0, 0))
	end, _ := g.CellAt(grid.Pos(1, 2))
	assert.Equal(t, grid.Start, start.Role)
	assert.Equal(t, grid.End, end.Role)
	assert.Equal(t, []grid.Position{grid.Pos(0, 1)}, g.Walls())
}

// TestNew_EveryCellPresent checks the one-cell-per-position invariant.
func TestNew_EveryCellPresent(t *testing.T) {
	g, err := grid.New(3, 4, grid.Pos(0, 0), grid.Pos(2, 3))
	require.NoError(t, err)
	require.Len(t, g.Cells(), 12)

	starts, ends := 0, 0
	for i, c := range g.Cells() {
		assert.Equal(t, g.Position(i), c.Pos)
		assert.Equal(t, i, g.Index(c.Pos))
		switch c.Role {
		case grid.Start:
			starts++
		case grid.End:
			ends++
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
}

// TestInBounds checks InBounds on a 2×3 board.
func TestInBounds(t *testing.T) {
	g, err := grid.New(2, 3, grid.Pos(0, 0), grid.Pos(1, 2))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Position{{0, 0}, {1, 2}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []grid.Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestCellAt_OutOfBounds verifies the OutOfBounds failure.
func TestCellAt_OutOfBounds(t *testing.T) {
	g, _ := grid.New(2, 2, grid.Pos(0, 0), grid.Pos(1, 1))
	_, err := g.CellAt(grid.Pos(2, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestDefaultOptions checks the stock session board.
func TestDefaultOptions(t *testing.T) {
	g, err := grid.NewWithOptions(grid.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 12, g.Rows())
	assert.Equal(t, 24, g.Cols())
	assert.Equal(t, grid.Pos(2, 2), g.Start())
	assert.Equal(t, grid.Pos(9, 20), g.End())
	assert.Empty(t, g.Walls())
}

//----------------------------------------------------------------------------//
// Neighbors, Mark and Fingerprint Tests
//----------------------------------------------------------------------------//

// TestAppendNeighbors checks the right, down, left, up order and wall skipping.
func TestAppendNeighbors(t *testing.T) {
	g := grid.MustParse(`
		S..
		.#.
		..E
	`)
	cases := []struct {
		at   grid.Position
		want []grid.Position
	}{
		{grid.Pos(0, 0), []grid.Position{{0, 1}, {1, 0}}},
		{grid.Pos(0, 1), []grid.Position{{0, 2}, {0, 0}}},
		{grid.Pos(2, 1), []grid.Position{{2, 2}, {2, 0}}},
		{grid.Pos(1, 2), []grid.Position{{2, 2}, {0, 2}}},
	}
	for _, tc := range cases {
		got := g.AppendNeighbors(nil, tc.at)
		assert.Equal(t, tc.want, got, "neighbors of %v", tc.at)
	}
}

// TestMark verifies flags land on a copy and the source is untouched.
func TestMark(t *testing.T) {
	g := grid.MustParse(`
		S..
		..E
	`)
	marked, err := g.Mark(
		[]grid.Position{{0, 0}, {0, 1}, {1, 0}},
		[]grid.Position{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
	)
	require.NoError(t, err)
	assert.Equal(t, "S**\no.E", marked.String())
	assert.Equal(t, "S..\n..E", g.String(), "source snapshot mutated")

	_, err = g.Mark([]grid.Position{{9, 9}}, nil)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	assert.True(t, marked.ClearMarks().Equal(g))
}

// TestFingerprint checks that layouts, not flags, drive the key.
func TestFingerprint(t *testing.T) {
	a := grid.MustParse("S.#\n..E")
	b := grid.MustParse("S*#\no.E")
	c := grid.MustParse("S..\n..E")
	d := grid.MustParse("S.#\n.E.")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

// TestCellsIsCopy ensures callers cannot mutate a snapshot through Cells.
func TestCellsIsCopy(t *testing.T) {
	g := grid.MustParse("S.E")
	cells := g.Cells()
	cells[1].Role = grid.Wall
	assert.Empty(t, g.Walls())
}

// TestPositionHelpers covers Manhattan, Adjacent and String.
func TestPositionHelpers(t *testing.T) {
	p, q := grid.Pos(1, 1), grid.Pos(3, 0)
	assert.Equal(t, 3, p.Manhattan(q))
	assert.False(t, p.Adjacent(q))
	assert.True(t, p.Adjacent(grid.Pos(1, 2)))
	assert.False(t, p.Adjacent(grid.Pos(2, 2)), "diagonals are not adjacent")
	assert.Equal(t, "(1,1)", p.String())
	assert.Equal(t, "wall", grid.Wall.String())
}
