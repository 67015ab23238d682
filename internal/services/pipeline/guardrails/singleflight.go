// Package guardrails provides overlap protection for pipeline cycles
package guardrails

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCycleRunning signals a cycle is already in flight
var ErrCycleRunning = errors.New("pipeline: cycle already running")

// SingleFlight admits one cycle at a time. A trigger that arrives while a
// cycle runs is skipped, not queued: the skipped work is picked up by the
// next trigger because unprocessed rows stay unprocessed
type SingleFlight struct {
	busy atomic.Bool
}

// Do runs fn if no other call is in flight, else returns ErrCycleRunning
func (g *SingleFlight) Do(ctx context.Context, fn func(context.Context) error) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrCycleRunning
	}
	defer g.busy.Store(false)
	return fn(ctx)
}
