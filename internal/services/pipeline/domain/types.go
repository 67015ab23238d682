// Package domain defines the pipeline orchestrator's types and ports
package domain

// CycleStats summarizes one pipeline cycle for logging and tests
type CycleStats struct {
	CycleID string

	// Fetched is the batch size read from the report store
	Fetched int
	// Failed reports hit an extraction error; left unprocessed for retry
	Failed int
	// Irrelevant reports carried no road signal; marked processed, no output
	Irrelevant int
	// Mapped reports were relevant and entered clustering
	Mapped int
	// Groups is the number of connected components, singletons included
	Groups int
	// Incidents is how many groups cleared the confirmation bar
	Incidents int
	// Marked is how many processed flags were flipped in the commit
	Marked int
}
