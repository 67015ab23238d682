package domain

import "context"

// RunnerPort executes pipeline cycles
type RunnerPort interface {
	// RunCycle performs one fetch → map → cluster → verify → persist pass.
	// On error no state was mutated; the next trigger retries the same batch
	RunCycle(ctx context.Context) (CycleStats, error)
}
