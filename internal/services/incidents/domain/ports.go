package domain

import "context"

// StorageRepo is the persistence surface for verified incidents
type StorageRepo interface {
	InsertBatch(ctx context.Context, xs []NewIncident) (int, error)
	Latest(ctx context.Context, limit int) ([]VerifiedIncident, error)
	SearchByLocation(ctx context.Context, location string, limit int) ([]VerifiedIncident, error)
}

// ReaderPort is the read-only surface the API exposes
type ReaderPort interface {
	Latest(ctx context.Context, in LatestInput) ([]VerifiedIncident, error)
	Search(ctx context.Context, in SearchInput) ([]VerifiedIncident, error)
}

// LatestInput filters the latest-incidents listing
type LatestInput struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// SearchInput filters incidents by location substring
type SearchInput struct {
	Location string `query:"location" validate:"required,min=2,max=200"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
