// Package search provides tunable options, result and error definitions
// for route search over a grid.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm other than BFS or DFS.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrInvalidLayout is returned when Start/End are out of bounds or equal.
	// It wraps grid.ErrInvalidLayout.
	ErrInvalidLayout = fmt.Errorf("search: %w", grid.ErrInvalidLayout)
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// BFS expands the oldest frontier entry first (FIFO).
	BFS Algorithm = iota
	// DFS expands the newest frontier entry first (LIFO).
	DFS
)

// String returns "bfs" or "dfs".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "bfs" or "dfs" (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnDiscover is called when a cell is first discovered, Start included.
	// Returning an error aborts the search and propagates that error.
	OnDiscover func(p grid.Position) error

	// OnExpand is called when a cell is popped from the frontier.
	OnExpand func(p grid.Position)

	// Logger receives Debug records for run start and finish.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op hooks
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDiscover: func(grid.Position) error { return nil },
		OnExpand:   func(grid.Position) {},
		Logger:     discardLogger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover registers a callback to run on discovery; returning an
// error from this callback stops the search.
func WithOnDiscover(fn func(p grid.Position) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers a callback to run when a cell is expanded.
func WithOnExpand(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger used for Debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of one search run. It is never modified after
// Search returns.
//   - Visited: cells in discovery order, Start first.
//   - Path:    Start..End inclusive, nil if End was not reached.
type Result struct {
	Algorithm  Algorithm
	Start, End grid.Position
	Visited    []grid.Position
	Path       []grid.Position
}

// Found reports whether End was reached.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}

// PathLength returns the number of edges on the route, or -1 if no route
// was found.
func (r *Result) PathLength() int {
	if !r.Found() {
		return -1
	}
	return len(r.Path) - 1
}

// Steps returns the number of discovered cells.
func (r *Result) Steps() int {
	return len(r.Visited)
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	out := *r
	out.Visited = append([]grid.Position(nil), r.Visited...)
	if r.Path != nil {
		out.Path = append([]grid.Position(nil), r.Path...)
	}
	return &out
}

// Mark applies r to g in one go: discovered cells get Visited and route
// cells get OnPath. g itself is not modified.
func (r *Result) Mark(g *grid.Grid) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	return g.Mark(r.Visited, r.Path)
}
