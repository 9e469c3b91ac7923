// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: editing a board
////////////////////////////////////////////////////////////////////////////////

// ExampleApply demonstrates the edit flow of an interactive session.
// Scenario:
//
//   - A 3×4 board with Start at (0,0) and End at (2,3).
//   - Drop a short wall, then move End behind it.
//   - Every edit returns a new snapshot; the original never changes.
func ExampleApply() {
	g, _ := grid.New(3, 4, grid.Pos(0, 0), grid.Pos(2, 3))

	g, _ = grid.Apply(g, grid.Pos(0, 2), grid.ModeWall)
	g, _ = grid.Apply(g, grid.Pos(1, 2), grid.ModeWall)
	g, _ = grid.Apply(g, grid.Pos(0, 3), grid.ModeEnd)

	fmt.Println(g)
	fmt.Println("walls:", g.Walls())
	// Output:
	// S.#E
	// ..#.
	// ....
	// walls: [(0,2) (1,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components shows how a wall column splits the open cells into
// separate regions, which is what makes End unreachable.
func ExampleGrid_Components() {
	g := grid.MustParse(`
		S.#..
		..#.E
	`)
	for i, comp := range g.Components() {
		fmt.Printf("region %d: %v\n", i, comp)
	}
	fmt.Println("reachable:", g.Reachable(g.Start(), g.End()))
	// Output:
	// region 0: [(0,0) (0,1) (1,0) (1,1)]
	// region 1: [(0,3) (0,4) (1,3) (1,4)]
	// reachable: false
}
