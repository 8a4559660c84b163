package meetnotes

import (
	"encoding/json"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// listRequest is the body for the provider's POST list endpoints.
type listRequest struct {
	Pagination pagination      `json:"pagination"`
	Filters    *listFilters    `json:"filters,omitempty"`
	Include    map[string]bool `json:"include,omitempty"`
}

// pagination carries the page size and the opaque continuation cursor.
type pagination struct {
	PageSize int    `json:"page_size"`
	Cursor   string `json:"cursor,omitempty"`
}

// listFilters narrows a listing by creation time.
type listFilters struct {
	CreatedAtStart *time.Time `json:"created_at_start,omitempty"`
}

// listResponse is the common shape of list endpoint responses.
// Data stays raw so recording payloads can be preserved verbatim.
type listResponse struct {
	Data     []json.RawMessage `json:"data"`
	PageInfo pageInfo          `json:"page_info"`
}

// pageInfo carries the continuation cursor. An empty cursor means the
// stream is exhausted.
type pageInfo struct {
	Cursor string `json:"cursor"`
}

// accountWire is the "who am I" response.
type accountWire struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// attendeeWire is one meeting attendee.
type attendeeWire struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// noteWire is one note entry from the notes stream.
type noteWire struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Attendees  []attendeeWire `json:"attendees"`
	FolderPath string         `json:"folder_path"`
}

// toDomain converts a wire note to the domain type.
func (n *noteWire) toDomain() domain.Note {
	note := domain.Note{
		ID:         n.ID,
		Title:      n.Title,
		FolderPath: n.FolderPath,
	}
	for _, a := range n.Attendees {
		if a.Name != "" {
			note.AttendeeNames = append(note.AttendeeNames, a.Name)
		}
		if a.Email != "" {
			note.AttendeeEmails = append(note.AttendeeEmails, a.Email)
		}
	}
	return note
}

// recordingWire is one recording entry from the recordings stream.
type recordingWire struct {
	ID         string     `json:"id"`
	NoteID     string     `json:"note_id"`
	Title      string     `json:"title"`
	StartedAt  *time.Time `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at"`
	FolderPath string     `json:"folder_path"`
}

// toDomain converts a wire recording to the domain type.
// The raw element is preserved verbatim as the payload.
func (r *recordingWire) toDomain(raw json.RawMessage) domain.Recording {
	return domain.Recording{
		ID:         r.ID,
		NoteID:     r.NoteID,
		Title:      r.Title,
		StartedAt:  r.StartedAt,
		EndedAt:    r.EndedAt,
		FolderPath: r.FolderPath,
		Payload:    string(raw),
	}
}
