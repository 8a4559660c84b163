package domain

import "fmt"

// RunSummary holds the counters for one ingestion run.
// It is ephemeral: returned to the caller, never persisted.
type RunSummary struct {
	// Processed is the number of records examined.
	Processed int

	// Created is the number of new records saved.
	Created int

	// Skipped counts records rejected by skip rules or already stored.
	Skipped int

	// Errors counts records that failed after exhausting retries,
	// plus a page fetch that stopped the run.
	Errors int

	// Cancelled is set when the run was interrupted by the caller.
	Cancelled bool
}

// String renders the summary as a single human-readable line.
func (s RunSummary) String() string {
	line := fmt.Sprintf("processed %d, created %d, skipped %d, errors %d",
		s.Processed, s.Created, s.Skipped, s.Errors)
	if s.Cancelled {
		line += " (cancelled)"
	}
	return line
}

// Clean reports whether the run finished without errors and touched
// at least one record. A clean run means the source is fully drained.
func (s RunSummary) Clean() bool {
	return !s.Cancelled && s.Errors == 0 && s.Processed > 0
}
