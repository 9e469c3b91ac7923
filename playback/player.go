package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Player replays search results one step at a time. At most one run is
// live; starting another or calling Stop voids the previous one.
// Safe for concurrent use.
type Player struct {
	opts Options

	mu      sync.Mutex
	gen     uint64 // bumped by Play, and by Stop while a run is live
	current *Run
}

// Run is a handle on one Play call.
type Run struct {
	gen    uint64
	done   chan struct{}
	cancel chan struct{} // closed when the run is voided
	reason error         // why it was voided; guarded by Player.mu
	err    error         // final outcome; written before done is closed
}

// NewPlayer creates a Player with the given options.
func NewPlayer(opts ...Option) *Player {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Player{opts: o}
}

// Play starts replaying res. onVisit receives every discovered cell in order;
// onPath, if a route exists, receives it once after the last visit. Either
// callback may be nil. Any run still in flight is superseded before Play
// returns. Returns ErrNilResult for a nil res.
func (p *Player) Play(ctx context.Context, res *search.Result, onVisit func(grid.Position), onPath func([]grid.Position)) (*Run, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if ctx == nil {
		ctx = context.Background()
	}
	events := Timeline(res)

	p.mu.Lock()
	p.voidLocked(ErrSuperseded)
	p.gen++
	r := &Run{
		gen:    p.gen,
		done:   make(chan struct{}),
		cancel: make(chan struct{}),
	}
	p.current = r
	p.mu.Unlock()

	p.opts.Logger.Debug("playback started",
		slog.Uint64("generation", r.gen),
		slog.String("algorithm", res.Algorithm.String()),
		slog.Int("events", len(events)))

	go p.run(ctx, r, events, onVisit, onPath)
	return r, nil
}

// Stop voids the live run, if any, without starting a new one. No callback
// from that run fires after Stop returns.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.voidLocked(ErrStopped)
		p.gen++
	}
}

// Generation returns the current generation counter.
func (p *Player) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

// StepDelay returns the configured inter-step delay.
func (p *Player) StepDelay() time.Duration {
	return p.opts.StepDelay
}

// voidLocked marks the live run stale. p.mu must be held.
func (p *Player) voidLocked(reason error) {
	r := p.current
	if r == nil {
		return
	}
	p.current = nil
	r.reason = reason
	close(r.cancel)
	p.opts.Logger.Debug("playback voided", slog.Uint64("generation", r.gen), slog.String("reason", reason.Error()))
}

// run delivers events, checking the generation under p.mu before each one.
func (p *Player) run(ctx context.Context, r *Run, events []Event, onVisit func(grid.Position), onPath func([]grid.Position)) {
	defer close(r.done)

	var tick <-chan time.Time
	if d := p.opts.StepDelay; d > 0 {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		tick = ticker.C
	}

	for _, ev := range events {
		if tick != nil {
			select {
			case <-tick:
			case <-r.cancel:
			case <-ctx.Done():
			}
		}
		if err := p.deliver(ctx, r, ev, onVisit, onPath); err != nil {
			r.err = err
			return
		}
	}

	p.mu.Lock()
	if p.current == r {
		p.current = nil
	}
	p.mu.Unlock()
	p.opts.Logger.Debug("playback finished", slog.Uint64("generation", r.gen))
}

// deliver applies one event unless the run went stale or ctx is done.
func (p *Player) deliver(ctx context.Context, r *Run, ev Event, onVisit func(grid.Position), onPath func([]grid.Position)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r.gen != p.gen || p.current != r {
		if r.reason != nil {
			return r.reason
		}
		return ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		p.current = nil
		return err
	}
	switch ev.Kind {
	case KindVisit:
		if onVisit != nil {
			onVisit(ev.Pos)
		}
	case KindPath:
		if onPath != nil {
			onPath(ev.Path)
		}
	}
	return nil
}

// Generation returns the generation this run was started with.
func (r *Run) Generation() uint64 { return r.gen }

// Done is closed once the run has finished, been voided, or been cancelled.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run ends and returns nil if every event was
// delivered, ErrSuperseded, ErrStopped, or the context error.
func (r *Run) Wait() error {
	<-r.done
	return r.err
}
