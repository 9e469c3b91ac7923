// Package search runs uninformed route search (breadth-first or depth-first)
// over a grid.Grid snapshot, returning the order in which cells were
// discovered and, when End is reachable, the route from Start to End.
//
// What
//
//   - Search(g, algo, opts...) explores 4-neighbor moves from g.Start().
//   - Returns a Result containing:
//   - Visited: every discovered cell, Start first, in discovery order
//   - Path:    Start..End inclusive, or nil when End is unreachable
//   - Both algorithms share one frontier discipline; only the pop end differs:
//   - BFS pops the oldest entry (FIFO) → the first route found has the
//     fewest edges.
//   - DFS pops the newest entry (LIFO) → some route, no length guarantee.
//   - A cell is recorded as visited the moment it is discovered (pushed),
//     not when it is expanded (popped). Popping End ends the search.
//   - Supports functional hooks:
//   - OnDiscover (when a cell is first seen; may abort with an error)
//   - OnExpand   (when a cell is popped for expansion)
//
// Determinism
//
//	Neighbors are expanded in the fixed order right, down, left, up and no
//	randomness is involved, so identical inputs yield identical Results.
//	Cache relies on this.
//
// No path
//
//	An unreachable End is not an error: Result.Found() reports false and
//	Visited holds exactly the region connected to Start.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (each cell discovered at most once, 4 neighbors each)
//   - Memory: O(N)   (frontier, seen flags, back-pointers)
//
// Routes are rebuilt from back-pointers recorded at discovery time rather
// than carried as partial paths in the frontier. Every cell is discovered
// exactly once, so the rebuilt route is identical to the partial path that
// would have been popped.
//
// Usage
//
//	res, err := search.Search(g, search.BFS)
//	if err != nil {
//		// ErrGridNil, ErrUnknownAlgorithm, ErrInvalidLayout, ctx or hook errors
//	}
//	if !res.Found() {
//		// render the "no path" state
//	}
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrUnknownAlgorithm   if algo is neither BFS nor DFS.
//   - ErrInvalidLayout      if Start/End are out of bounds or equal.
//   - context errors        if the WithContext context is done.
//   - Wrapped errors returned by an OnDiscover hook.
package search
