// Package domain defines raw report types and ports
package domain

import "time"

// Source says which channel a report arrived from
type Source string

const (
	// SourceGroup is a report relayed from a group chat
	SourceGroup Source = "group"
	// SourceUser is a report sent directly by a user
	SourceUser Source = "user"
)

// RawReport is one unverified road-condition message as stored.
// The pipeline borrows these rows: it reads them and flips Processed,
// but ingestion owns their lifecycle
type RawReport struct {
	ID         string
	Source     Source
	Text       string
	ReportedAt time.Time
	Processed  bool
}
