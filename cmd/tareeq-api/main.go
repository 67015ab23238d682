package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tareeq/internal/modkit"
	"tareeq/internal/platform/config"
	"tareeq/internal/platform/logger"
	phttp "tareeq/internal/platform/net/http"
	mw "tareeq/internal/platform/net/middleware"
	"tareeq/internal/platform/store"

	incidentsmod "tareeq/internal/services/incidents/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		AppName: "tareeq-api",
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

	srv := phttp.NewServer(root, func(m *chi.Mux) {
		m.Use(chimw.RequestID)
		m.Use(mw.RequestLogger)
		m.Use(mw.RecoverJSON)
		m.Use(cors.Handler(cors.Options{
			AllowedOrigins: strings.Split(root.MayString("API_CORS_ORIGINS", "*"), ","),
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		m.Use(mw.AccessLog(mw.AccessLogOptions{Slow: 2 * time.Second}))
	})

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}
	incidentsmod.New(deps).Mount(srv.Mux())

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
		<-errc
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	}
}
