// Package domain defines verified incident types and ports
package domain

import "time"

// VerifiedIncident is the synthesized record for a confirmed road event.
// Immutable once written: later corroborating reports create a new
// incident instead of mutating this one
type VerifiedIncident struct {
	ID                      string    `json:"id"`
	RepresentativeText      string    `json:"representative_text"`
	LocationText            *string   `json:"location_text"`
	TimeText                *string   `json:"time_text"`
	EventType               *string   `json:"event_type"`
	ContributingReportCount int       `json:"contributing_report_count"`
	FirstReportAt           time.Time `json:"first_report_at"`
	LastReportAt            time.Time `json:"last_report_at"`
	CreatedAt               time.Time `json:"created_at"`
}

// NewIncident is the write model produced by the verification policy.
// Empty strings on the nullable fields persist as NULL
type NewIncident struct {
	RepresentativeText      string
	LocationText            string
	TimeText                string
	EventType               string
	ContributingReportCount int
	FirstReportAt           time.Time
	LastReportAt            time.Time
}
