// Package repo provides the Postgres repository for verified incidents
package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tareeq/internal/modkit/repokit"
	"tareeq/internal/platform/errors"
	str "tareeq/internal/platform/strings"
	"tareeq/internal/services/incidents/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

const selectCols = `
	id::text, representative_text, location_text, time_text, event_type,
	contributing_report_count, first_report_at, last_report_at, created_at`

// InsertBatch writes all incidents of one cycle in a single statement.
// Meant to run inside the cycle transaction so either every incident of
// the cycle lands or none do
func (s *pg) InsertBatch(ctx context.Context, xs []domain.NewIncident) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO verified_incidents
		(id, representative_text, location_text, time_text, event_type,
		 contributing_report_count, first_report_at, last_report_at)
		VALUES `)
	args := make([]any, 0, len(xs)*8)
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*8 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args,
			uuid.NewString(),
			x.RepresentativeText,
			str.SQLNull(x.LocationText),
			str.SQLNull(x.TimeText),
			str.SQLNull(x.EventType),
			x.ContributingReportCount,
			x.FirstReportAt,
			x.LastReportAt,
		)
	}
	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, errors.FromPostgres(err, "insert incidents")
	}
	return int(tag.RowsAffected()), nil
}

// Latest returns the most recently created incidents
func (s *pg) Latest(ctx context.Context, limit int) ([]domain.VerifiedIncident, error) {
	q := `SELECT` + selectCols + `
		FROM verified_incidents
		ORDER BY created_at DESC, id
		LIMIT $1`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, errors.FromPostgres(err, "list latest incidents")
	}
	defer rows.Close()
	return scanIncidents(rows)
}

// SearchByLocation matches incidents whose location contains the needle,
// case-insensitively, newest first
func (s *pg) SearchByLocation(
	ctx context.Context,
	location string,
	limit int,
) ([]domain.VerifiedIncident, error) {
	q := `SELECT` + selectCols + `
		FROM verified_incidents
		WHERE location_text ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id
		LIMIT $2`
	rows, err := s.q.Query(ctx, q, location, limit)
	if err != nil {
		return nil, errors.FromPostgres(err, "search incidents")
	}
	defer rows.Close()
	return scanIncidents(rows)
}

func scanIncidents(rows repokit.Rows) ([]domain.VerifiedIncident, error) {
	var out []domain.VerifiedIncident
	for rows.Next() {
		var v domain.VerifiedIncident
		if err := rows.Scan(
			&v.ID, &v.RepresentativeText, &v.LocationText, &v.TimeText, &v.EventType,
			&v.ContributingReportCount, &v.FirstReportAt, &v.LastReportAt, &v.CreatedAt,
		); err != nil {
			return nil, errors.FromPostgres(err, "scan incident")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
