// Package gridwalk is an in-memory playground for watching breadth-first and
// depth-first search explore a rectangular maze, one cell at a time.
//
// What is gridwalk?
//
//	A small set of packages that fit together as a pipeline:
//		• grid     – immutable board snapshots, the edit operations, ASCII maps
//		• search   – BFS/DFS over a board with back-pointer route recovery
//		• playback – replays a search result step by step, cancellable
//		• cmd/gridwalk – terminal UI (play) and one-shot solver (solve)
//
// Why gridwalk?
//
//   - Deterministic – neighbours are always tried right, down, left, up
//   - Immutable boards – every edit returns a new snapshot, safe to share
//   - Cancellable playback – a newer run or an edit voids the older one
//     before any of its stale steps can be drawn
//
// Quick ASCII example:
//
//	S . # .
//	. . # E
//	. . . .
//
//	BFS discovers cells in rings around S and reports the shortest route;
//	DFS dives right and down first and may return a longer one.
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
