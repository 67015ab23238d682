// Package repo provides the Postgres repository for raw reports
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tareeq/internal/modkit/repokit"
	"tareeq/internal/platform/errors"
	"tareeq/internal/services/reports/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// Insert stores one raw report and returns its id
func (s *pg) Insert(
	ctx context.Context,
	source domain.Source,
	text string,
	reportedAt time.Time,
) (string, error) {
	const q = `
		INSERT INTO raw_reports (id, source, text, reported_at)
		VALUES ($1, $2::report_source_enum, $3, $4)
		RETURNING id::text`
	var id string
	if err := s.q.QueryRow(ctx, q, uuid.NewString(), source, text, reportedAt).Scan(&id); err != nil {
		return "", errors.FromPostgres(err, "insert raw report")
	}
	return id, nil
}

// ListUnprocessed returns up to limit unprocessed reports ordered by
// (reported_at, id) so every cycle sees the same batch for the same data
func (s *pg) ListUnprocessed(ctx context.Context, limit int) ([]domain.RawReport, error) {
	const q = `
		SELECT id::text, source::text, COALESCE(text, ''), reported_at, processed
		FROM raw_reports
		WHERE NOT processed
		ORDER BY reported_at, id
		LIMIT $1`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, errors.FromPostgres(err, "list unprocessed reports")
	}
	defer rows.Close()

	var out []domain.RawReport
	for rows.Next() {
		var r domain.RawReport
		var src string
		if err := rows.Scan(&r.ID, &src, &r.Text, &r.ReportedAt, &r.Processed); err != nil {
			return nil, errors.FromPostgres(err, "scan raw report")
		}
		r.Source = domain.Source(src)
		out = append(out, r)
	}
	return out, rows.Err()
}

// MarkProcessed flips processed to true for the given ids and reports how
// many rows changed. The flag is monotonic: there is no reset path
func (s *pg) MarkProcessed(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	const q = `
		UPDATE raw_reports
		SET processed = TRUE
		WHERE id = ANY($1::uuid[]) AND NOT processed`
	tag, err := s.q.Exec(ctx, q, ids)
	if err != nil {
		return 0, errors.FromPostgres(err, "mark reports processed")
	}
	return tag.RowsAffected(), nil
}
