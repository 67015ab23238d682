// Package service contains incident read workflows
package service

import (
	"context"

	"tareeq/internal/modkit/repokit"
	"tareeq/internal/services/incidents/domain"
)

const defaultLimit = 20

// Service defines the service contract for incidents
type Service interface{ domain.ReaderPort }

// Svc implements the Service interface
type Svc struct {
	repo domain.StorageRepo
}

// New creates a new incidents read service
func New(db repokit.TxRunner, binder repokit.Binder[domain.StorageRepo]) *Svc {
	if db == nil {
		panic("incidents.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("incidents.Service requires a non nil repo binder")
	}
	return &Svc{repo: binder.Bind(db)}
}

// Latest returns the newest incidents, default 20
func (s *Svc) Latest(ctx context.Context, in domain.LatestInput) ([]domain.VerifiedIncident, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.repo.Latest(ctx, limit)
}

// Search returns incidents whose location matches in.Location
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) ([]domain.VerifiedIncident, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.repo.SearchByLocation(ctx, in.Location, limit)
}
