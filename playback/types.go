package playback

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Sentinel errors reported by Run.Wait.
var (
	// ErrSuperseded means a newer Play replaced the run before it finished.
	ErrSuperseded = errors.New("playback: superseded by a newer run")
	// ErrStopped means Stop was called before the run finished.
	ErrStopped = errors.New("playback: stopped")
	// ErrNilResult is returned by Play when given a nil result.
	ErrNilResult = errors.New("playback: result is nil")
)

// DefaultStepDelay is the pause between two consecutive events.
const DefaultStepDelay = 20 * time.Millisecond

// EventKind distinguishes timeline entries.
type EventKind int

const (
	// KindVisit reveals one discovered cell.
	KindVisit EventKind = iota
	// KindPath reveals the whole route at once.
	KindPath
)

// String returns "visit" or "path".
func (k EventKind) String() string {
	switch k {
	case KindVisit:
		return "visit"
	case KindPath:
		return "path"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one animation step.
type Event struct {
	Kind EventKind
	Step int             // 0-based position in the timeline
	Pos  grid.Position   // set for KindVisit
	Path []grid.Position // set for KindPath
}

// Timeline flattens res into its animation order: one KindVisit per
// discovered cell, then one KindPath if a route was found.
func Timeline(res *search.Result) []Event {
	if res == nil {
		return nil
	}
	n := len(res.Visited)
	if res.Found() {
		n++
	}
	events := make([]Event, 0, n)
	for i, p := range res.Visited {
		events = append(events, Event{Kind: KindVisit, Step: i, Pos: p})
	}
	if res.Found() {
		path := append([]grid.Position(nil), res.Path...)
		events = append(events, Event{Kind: KindPath, Step: len(events), Path: path})
	}
	return events
}

// Option configures a Player.
type Option func(*Options)

// Options holds Player settings.
type Options struct {
	// StepDelay separates consecutive events. Zero replays as fast as possible.
	StepDelay time.Duration
	// Logger receives Debug records for run start, supersede and finish.
	Logger *slog.Logger
}

// DefaultOptions returns DefaultStepDelay and a discarding logger.
func DefaultOptions() Options {
	return Options{
		StepDelay: DefaultStepDelay,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStepDelay sets the inter-step delay. Negative values are treated as zero.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.StepDelay = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
