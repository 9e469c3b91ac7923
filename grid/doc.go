// Package grid treats a rectangular board of cells as a graph for
// uninformed route search, and provides the edit operations that reshape it.
//
// What:
//
//   - Grid is an immutable snapshot of a rows×cols board. Every cell has
//     exactly one Role (Empty, Wall, Start or End) plus two search flags
//     (Visited, OnPath).
//   - Exactly one Start and one End exist at all times, they never coincide,
//     and neither of them is ever a Wall.
//   - Editor functions (ToggleWall, MoveStart, MoveEnd, Reset, Apply) never
//     mutate their input; they return a new snapshot or the input itself when
//     the edit is a no-op.
//   - Adjacency is 4-neighbor only, expanded in the fixed order
//     right, down, left, up.
//   - Parse/String convert to and from a plain ASCII map.
//
// Why:
//
//   - A search or an in-flight animation can keep reading the snapshot it
//     was given while the user continues editing; nobody ever observes a
//     half-updated board, so no locking is needed.
//
// ASCII map symbols:
//
//	S  start       E  end        #  wall
//	.  empty       o  visited    *  on path
//
// Complexity:
//
//   - New, Mark, every editor operation: O(R×C) time and memory (full copy).
//   - CellAt, InBounds, AppendNeighbors: O(1).
//   - Component: O(R×C) time and memory.
//
// Errors:
//
//   - ErrInvalidLayout: Start/End missing, equal or out of bounds.
//   - ErrEmptyGrid: zero rows or columns (wraps ErrInvalidLayout).
//   - ErrNonRectangular: ASCII rows of differing widths (wraps ErrInvalidLayout).
//   - ErrOutOfBounds: position outside [0,rows)×[0,cols).
//   - ErrUnknownSymbol: unrecognized character in an ASCII map.
//   - ErrNilGrid: nil *Grid passed to an editor operation.
package grid
