package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"tareeq/internal/modkit"
	"tareeq/internal/platform/config"
	"tareeq/internal/platform/logger"
	"tareeq/internal/platform/store"

	pipelinemod "tareeq/internal/services/pipeline/module"
)

func main() {
	var (
		once    = flag.Bool("once", false, "run a single verification cycle and exit")
		batch   = flag.Int("batch", 0, "batch size override (0 uses CORE_PIPELINE_BATCH_SIZE)")
		workers = flag.Int("workers", 0, "mapper concurrency override (0 uses CORE_PIPELINE_WORKERS)")
	)
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		AppName: "tareeq-pipeline",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := st.Guard(ctx); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	pm := pipelinemod.New(deps, pipelinemod.Options{
		BatchSize: *batch,
		Workers:   *workers,
	})

	if *once {
		stats, err := pm.Runner().RunCycle(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("cycle failed")
		}
		l.Info().
			Str("cycle_id", stats.CycleID).
			Int("fetched", stats.Fetched).
			Int("incidents", stats.Incidents).
			Msg("single cycle done")
		return
	}

	if err := pm.Scheduler().Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("scheduler stopped")
	}
}
