// Package search provides breadth-first and depth-first route search over a
// grid.Grid, returning the discovery order and the route to End.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridwalk/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	g        *grid.Grid
	opts     Options
	ctx      context.Context
	frontier *frontier[grid.Position]
	seen     []bool
	cameFrom []int // row-major index of the discovering cell, -1 for Start
	nbrs     []grid.Position
	res      *Result
}

// Search runs algo over g from g.Start() towards g.End(), applying any number
// of functional Options. g is only read.
// Returns ErrGridNil, ErrUnknownAlgorithm or ErrInvalidLayout for invalid
// input, the context error on cancellation, or a wrapped OnDiscover error.
// An unreachable End is reported through Result.Found, not as an error.
func Search(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if algo != BFS && algo != DFS {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, end := g.Start(), g.End()
	if !g.InBounds(start) || !g.InBounds(end) || start == end {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrInvalidLayout, start, end)
	}

	n := g.Size()
	w := &walker{
		g:        g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: newFrontier[grid.Position](algo, n),
		seen:     make([]bool, n),
		cameFrom: make([]int, n),
		nbrs:     make([]grid.Position, 0, 4),
		res: &Result{
			Algorithm: algo,
			Start:     start,
			End:       end,
			Visited:   make([]grid.Position, 0, n),
		},
	}

	o.Logger.Debug("search started",
		slog.String("algorithm", algo.String()),
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()))

	// Seed frontier with Start (no parent)
	if err := w.discover(start, -1); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	o.Logger.Debug("search finished",
		slog.String("algorithm", algo.String()),
		slog.Bool("found", w.res.Found()),
		slog.Int("visited", w.res.Steps()),
		slog.Int("path_length", w.res.PathLength()))

	return w.res, nil
}

// discover marks p seen, records its parent and discovery order, calls
// OnDiscover, and pushes p onto the frontier.
func (w *walker) discover(p grid.Position, parent int) error {
	i := w.g.Index(p)
	w.seen[i] = true
	w.cameFrom[i] = parent
	w.res.Visited = append(w.res.Visited, p)
	if err := w.opts.OnDiscover(p); err != nil {
		return fmt.Errorf("search: OnDiscover error at %v: %w", p, err)
	}
	w.frontier.Push(p)
	return nil
}

// loop pops until End is expanded, the frontier drains, or ctx is done.
func (w *walker) loop() error {
	for w.frontier.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		p := w.frontier.Pop()
		w.opts.OnExpand(p)
		if p == w.res.End {
			w.res.Path = w.pathTo(p)
			return nil
		}

		w.nbrs = w.g.AppendNeighbors(w.nbrs[:0], p)
		parent := w.g.Index(p)
		for _, q := range w.nbrs {
			if w.seen[w.g.Index(q)] {
				continue
			}
			if err := w.discover(q, parent); err != nil {
				return err
			}
		}
	}
	return nil
}

// pathTo walks back-pointers from dest to Start and reverses the result.
func (w *walker) pathTo(dest grid.Position) []grid.Position {
	var path []grid.Position
	for at := w.g.Index(dest); at >= 0; at = w.cameFrom[at] {
		path = append(path, w.g.Position(at))
	}
	// reverse to get Start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
