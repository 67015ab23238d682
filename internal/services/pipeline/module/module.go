// Package module wires the pipeline orchestrator
package module

import (
	"tareeq/internal/core/lexicon"
	"tareeq/internal/modkit"
	increpo "tareeq/internal/services/incidents/repo"
	"tareeq/internal/services/pipeline/domain"
	"tareeq/internal/services/pipeline/service"
	reprepo "tareeq/internal/services/reports/repo"
)

// Module bundles the pipeline runner and its scheduler
type Module struct {
	runner    domain.RunnerPort
	scheduler *service.Scheduler
}

// New constructs the pipeline module from core deps.
// overrides beat env config when non-zero
func New(deps modkit.Deps, overrides Options) *Module {
	cfg := FromConfig(deps.Cfg)
	if overrides.BatchSize != 0 {
		cfg.BatchSize = overrides.BatchSize
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.Threshold != 0 {
		cfg.Threshold = overrides.Threshold
	}
	if overrides.Window != 0 {
		cfg.Window = overrides.Window
	}
	if overrides.MinConfirmations != 0 {
		cfg.MinConfirmations = overrides.MinConfirmations
	}
	if overrides.Interval != 0 {
		cfg.Interval = overrides.Interval
	}

	runner := service.New(
		deps.PG,
		reprepo.NewPG(),
		increpo.NewPG(),
		lexicon.MustLoad(),
		service.Config{
			BatchSize:        cfg.BatchSize,
			Workers:          cfg.Workers,
			Threshold:        cfg.Threshold,
			Window:           cfg.Window,
			MinConfirmations: cfg.MinConfirmations,
		},
	)

	return &Module{
		runner:    runner,
		scheduler: service.NewScheduler(runner, cfg.Interval),
	}
}

// Runner exposes the cycle runner (used by -once)
func (m *Module) Runner() domain.RunnerPort { return m.runner }

// Scheduler exposes the interval scheduler
func (m *Module) Scheduler() *service.Scheduler { return m.scheduler }
