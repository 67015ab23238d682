package service

import (
	"context"
	"errors"
	"time"

	"tareeq/internal/platform/logger"
	"tareeq/internal/services/pipeline/domain"
	"tareeq/internal/services/pipeline/guardrails"
)

// Scheduler triggers pipeline cycles on a fixed interval.
// Triggers fire asynchronously; the single-flight guard turns a trigger
// that lands mid-cycle into a clean skip
type Scheduler struct {
	Runner   domain.RunnerPort
	Interval time.Duration

	guard guardrails.SingleFlight
}

// NewScheduler constructs a Scheduler
func NewScheduler(runner domain.RunnerPort, interval time.Duration) *Scheduler {
	if runner == nil {
		panic("pipeline.Scheduler requires a runner")
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{Runner: runner, Interval: interval}
}

// Run fires an immediate cycle then ticks until ctx is done
func (s *Scheduler) Run(ctx context.Context) error {
	log := logger.Named("scheduler")
	log.Info().Dur("interval", s.Interval).Msg("pipeline scheduler started")

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	go s.trigger(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("pipeline scheduler stopped")
			return nil
		case <-ticker.C:
			go s.trigger(ctx)
		}
	}
}

// trigger runs one guarded cycle; errors are logged, never fatal to the loop
func (s *Scheduler) trigger(ctx context.Context) {
	err := s.guard.Do(ctx, func(ctx context.Context) error {
		_, e := s.Runner.RunCycle(ctx)
		return e
	})
	switch {
	case err == nil:
	case errors.Is(err, guardrails.ErrCycleRunning):
		logger.Named("scheduler").Debug().Msg("previous cycle still running; trigger skipped")
	case errors.Is(err, context.Canceled):
	default:
		logger.Named("scheduler").Error().Err(err).Msg("cycle failed; will retry next trigger")
	}
}
