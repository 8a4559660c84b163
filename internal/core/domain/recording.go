package domain

import "time"

// Recording is a raw meeting recording as listed by the provider,
// before normalisation. It is the connector's output.
type Recording struct {
	// ID is the provider-assigned recording identifier.
	ID string

	// NoteID references the meeting note this recording belongs to,
	// if the provider linked one.
	NoteID string

	// Title is the recording title.
	Title string

	// StartedAt is when the recording started, if reported.
	StartedAt *time.Time

	// EndedAt is when the recording ended, if reported.
	EndedAt *time.Time

	// Payload is the provider's serialized record, kept verbatim.
	Payload string

	// FolderPath is where the recording lives in the provider's
	// workspace, if reported.
	FolderPath string

	// Note is attached during ingestion when the notes index holds a
	// matching entry. Nil when enrichment was unavailable.
	Note *Note
}

// LengthMinutes derives the recording duration in whole minutes.
// Returns 0 when either timestamp is missing or the range is negative.
func (r *Recording) LengthMinutes() int {
	if r.StartedAt == nil || r.EndedAt == nil {
		return 0
	}
	d := r.EndedAt.Sub(*r.StartedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
