// Package playback replays a search.Result as a timed sequence of view
// updates so a renderer can animate exploration instead of jumping to the
// final board.
//
// A Player delivers one visit event per step delay, in discovery order, then
// the whole route as a single final event when one exists. Every call to
// Play starts a new generation; steps from an older generation are dropped
// and can never reach a callback once the newer Play (or Stop) has returned.
// Callbacks are invoked while the Player holds its guard, so they must not
// call back into the same Player.
//
// Canvas is a ready-made view: it keeps a base grid snapshot plus the marks
// delivered so far and hands out consistent snapshots to a renderer running
// on another goroutine.
package playback
