//go:build integration_pg
// +build integration_pg

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"tareeq/internal/core/lexicon"
	"tareeq/internal/platform/store"
	increpo "tareeq/internal/services/incidents/repo"
	repdom "tareeq/internal/services/reports/domain"
	reprepo "tareeq/internal/services/reports/repo"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

// openStore opens the platform store and applies the schema file
func openStore(t *testing.T, ctx context.Context, dsn string) *store.Store {
	t.Helper()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{
			Enabled:  true,
			URL:      dsn,
			MaxConns: 2,
		},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	schema, err := os.ReadFile("../../../../migrations/schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	// no args means pgx runs this over the simple protocol, so the whole
	// multi-statement file applies in one call
	if _, err := st.PG.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return st
}

func TestRunCycle_Integration_EndToEnd(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)

	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	reports := reprepo.NewPG().Bind(st.PG)
	seed := []struct {
		text string
		at   time.Time
	}{
		{"حادث سير على شارع الملك", base},
		{"حادث على شارع الملك", base.Add(time.Hour)},
		{"الطريق سالك", base.Add(10 * time.Minute)},
	}
	for _, s := range seed {
		id, err := reports.Insert(ctx, repdom.SourceGroup, s.text, s.at)
		if err != nil {
			t.Fatalf("seed insert: %v", err)
		}
		if id == "" {
			t.Fatalf("empty report id")
		}
	}

	svc := New(st.PG, reprepo.NewPG(), increpo.NewPG(), lexicon.MustLoad(), Config{
		BatchSize:        100,
		Workers:          2,
		Threshold:        0.8,
		Window:           2 * time.Hour,
		MinConfirmations: 2,
	})

	stats, err := svc.RunCycle(ctx)
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if stats.Fetched != 3 || stats.Incidents != 1 || stats.Marked != 3 {
		t.Fatalf("stats = %+v", stats)
	}

	incidents := increpo.NewPG().Bind(st.PG)
	latest, err := incidents.Latest(ctx, 10)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(latest) != 1 {
		t.Fatalf("expected 1 incident, got %d", len(latest))
	}
	inc := latest[0]
	if inc.ContributingReportCount != 2 {
		t.Fatalf("ContributingReportCount = %d", inc.ContributingReportCount)
	}
	if inc.LocationText == nil || *inc.LocationText != "شارع الملك" {
		t.Fatalf("LocationText = %v", inc.LocationText)
	}
	if inc.EventType == nil || *inc.EventType != "accident" {
		t.Fatalf("EventType = %v", inc.EventType)
	}

	found, err := incidents.SearchByLocation(ctx, "شارع", 10)
	if err != nil {
		t.Fatalf("SearchByLocation: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("search expected 1 hit, got %d", len(found))
	}

	// everything consumed, the next cycle is a no-op
	stats, err = svc.RunCycle(ctx)
	if err != nil {
		t.Fatalf("second cycle: %v", err)
	}
	if stats.Fetched != 0 {
		t.Fatalf("second cycle refetched: %+v", stats)
	}
}
