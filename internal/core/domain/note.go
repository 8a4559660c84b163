package domain

// Note is the meeting-notes metadata fetched from the provider's notes
// stream. Notes are joined onto recordings by ID during ingestion to
// enrich records with attendee and content metadata. Never persisted on
// its own.
type Note struct {
	// ID is the provider-assigned note identifier.
	ID string

	// Title is the note title.
	Title string

	// AttendeeNames lists attendee display names.
	AttendeeNames []string

	// AttendeeEmails lists attendee email addresses.
	AttendeeEmails []string

	// FolderPath is where the note lives in the provider's workspace.
	FolderPath string
}

// CaptionCue is one parsed WebVTT caption cue from the drive caption
// export endpoint.
type CaptionCue struct {
	// Start is the cue start offset, e.g. "00:01:02.500".
	Start string

	// End is the cue end offset.
	End string

	// Text is the caption text.
	Text string
}
