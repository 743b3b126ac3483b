package domain

import "time"

// Metadata describes a single analysis run.
type Metadata struct {
	// RunID uniquely identifies the run.
	RunID string

	// Timestamp is when the run started.
	Timestamp time.Time

	// DocumentsAnalyzed lists the documents in report order.
	DocumentsAnalyzed []DocumentName
}
