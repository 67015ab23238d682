// Package service implements the verification pipeline orchestrator
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tareeq/internal/core/arabic"
	"tareeq/internal/core/cluster"
	"tareeq/internal/core/extract"
	"tareeq/internal/core/lexicon"
	"tareeq/internal/core/verify"
	"tareeq/internal/modkit/repokit"
	perr "tareeq/internal/platform/errors"
	"tareeq/internal/platform/logger"
	incdom "tareeq/internal/services/incidents/domain"
	"tareeq/internal/services/pipeline/domain"
	repdom "tareeq/internal/services/reports/domain"
)

// Config for the pipeline service
type Config struct {
	BatchSize        int
	Workers          int
	Threshold        float64
	Window           time.Duration
	MinConfirmations int
}

// Service implements domain.RunnerPort
type Service struct {
	DB        repokit.TxRunner
	Reports   repokit.Binder[repdom.StorageRepo]
	Incidents repokit.Binder[incdom.StorageRepo]

	mapper *extract.Mapper
	policy verify.Policy
	Cfg    Config

	// mapFn seam; tests may swap it to inject extraction failures
	mapFn func(text string) (extract.Info, error)
}

// New constructs the pipeline service
func New(
	db repokit.TxRunner,
	reports repokit.Binder[repdom.StorageRepo],
	incidents repokit.Binder[incdom.StorageRepo],
	lex *lexicon.Pack,
	cfg Config,
) *Service {
	if db == nil {
		panic("pipeline.Service requires a non nil TxRunner")
	}
	if reports == nil || incidents == nil {
		panic("pipeline.Service requires report and incident binders")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = 0.8
	}
	if cfg.Window <= 0 {
		cfg.Window = 2 * time.Hour
	}
	if cfg.MinConfirmations <= 0 {
		cfg.MinConfirmations = 2
	}
	s := &Service{
		DB:        db,
		Reports:   reports,
		Incidents: incidents,
		mapper:    extract.NewMapper(lex),
		policy:    verify.Policy{MinConfirmations: cfg.MinConfirmations},
		Cfg:       cfg,
	}
	s.mapFn = s.mapOne
	return s
}

// RunCycle performs one fetch → map → cluster → verify → persist pass.
// The persist stage commits incident rows and processed flags in a single
// transaction, so a crash or store failure leaves the batch untouched and
// the next trigger replays it
func (s *Service) RunCycle(ctx context.Context) (domain.CycleStats, error) {
	cycleID := uuid.NewString()
	ctx = logger.WithCycle(ctx, cycleID)
	log := logger.C(ctx)

	stats := domain.CycleStats{CycleID: cycleID}

	reports, err := s.Reports.Bind(s.DB).ListUnprocessed(ctx, s.Cfg.BatchSize)
	if err != nil {
		return stats, perr.WithOp(err, "pipeline.fetch")
	}
	stats.Fetched = len(reports)
	if len(reports) == 0 {
		log.Debug().Msg("no unprocessed reports")
		return stats, nil
	}

	mapped := s.mapAll(ctx, reports)

	// split mapping results: clusterable docs, their verify members, and
	// the ids to flag. Failed reports stay unprocessed for a later cycle
	var (
		docs      []cluster.Doc
		members   []verify.Member
		processed = make([]string, 0, len(reports))
	)
	for i, r := range reports {
		if mapped[i].failed {
			stats.Failed++
			continue
		}
		info := mapped[i].info
		if !info.Relevant {
			stats.Irrelevant++
			processed = append(processed, r.ID)
			continue
		}
		docs = append(docs, cluster.Doc{
			Tokens: arabic.Tokenize(info.Normalized),
			At:     r.ReportedAt,
		})
		members = append(members, verify.Member{
			Normalized: info.Normalized,
			Location:   info.Location,
			Time:       info.Time,
			Event:      info.EventType,
			At:         r.ReportedAt,
		})
		processed = append(processed, r.ID)
	}
	stats.Mapped = len(docs)

	groups := cluster.Group(docs, cluster.Options{
		Threshold: s.Cfg.Threshold,
		Window:    s.Cfg.Window,
	})
	stats.Groups = len(groups)

	candidates := make([][]verify.Member, 0, len(groups))
	for _, g := range groups {
		ms := make([]verify.Member, len(g))
		for k, idx := range g {
			ms[k] = members[idx]
		}
		if len(ms) < s.Cfg.MinConfirmations {
			log.Debug().Int("group_size", len(ms)).Msg("group below confirmation bar")
		}
		candidates = append(candidates, ms)
	}
	incidents := s.policy.Confirm(candidates)
	stats.Incidents = len(incidents)

	writes := make([]incdom.NewIncident, len(incidents))
	for i, inc := range incidents {
		writes[i] = incdom.NewIncident{
			RepresentativeText:      inc.RepresentativeText,
			LocationText:            inc.Location,
			TimeText:                inc.Time,
			EventType:               inc.Event,
			ContributingReportCount: inc.Count,
			FirstReportAt:           inc.FirstAt,
			LastReportAt:            inc.LastAt,
		}
	}

	if len(writes) > 0 || len(processed) > 0 {
		var marked int64
		err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
			if _, e := s.Incidents.Bind(q).InsertBatch(ctx, writes); e != nil {
				return e
			}
			n, e := s.Reports.Bind(q).MarkProcessed(ctx, processed)
			marked = n
			return e
		})
		if err != nil {
			// nothing committed; the whole batch is retried next trigger
			return stats, perr.WithOp(err, "pipeline.persist")
		}
		stats.Marked = int(marked)
	}

	log.Info().
		Int("fetched", stats.Fetched).
		Int("failed", stats.Failed).
		Int("irrelevant", stats.Irrelevant).
		Int("mapped", stats.Mapped).
		Int("groups", stats.Groups).
		Int("incidents", stats.Incidents).
		Int("marked", stats.Marked).
		Msg("cycle complete")
	return stats, nil
}

type mapResult struct {
	info   extract.Info
	failed bool
}

// mapAll runs the extractor over the batch with a bounded worker pool.
// Results land at their input index, so downstream order never depends on
// goroutine scheduling
func (s *Service) mapAll(ctx context.Context, reports []repdom.RawReport) []mapResult {
	out := make([]mapResult, len(reports))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}
	for i := range reports {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			r := reports[i]
			info, err := s.mapFn(r.Text)
			if err != nil {
				out[i].failed = true
				logger.C(ctx).Error().
					Str("report_id", r.ID).
					Time("reported_at", r.ReportedAt).
					Str("stage", "mapping").
					Err(err).
					Msg("extraction failed; report left unprocessed")
				return
			}
			out[i].info = info
		}(i)
	}
	wg.Wait()
	return out
}

// mapOne guards the extractor so a panic on one pathological report
// becomes that report's failure instead of the cycle's
func (s *Service) mapOne(text string) (info extract.Info, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = perr.PanicErrf("extract: %v", v)
		}
	}()
	return s.mapper.Map(text), nil
}
