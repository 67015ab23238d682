package domain

import (
	"context"
	"time"
)

// StorageRepo is the persistence surface for raw reports.
// ListUnprocessed orders by (reported_at, id) ascending so batches are
// deterministic; MarkProcessed only ever sets the flag to true
type StorageRepo interface {
	Insert(ctx context.Context, source Source, text string, reportedAt time.Time) (string, error)
	ListUnprocessed(ctx context.Context, limit int) ([]RawReport, error)
	MarkProcessed(ctx context.Context, ids []string) (int64, error)
}
