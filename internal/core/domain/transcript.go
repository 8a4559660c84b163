package domain

import (
	"sort"
	"strings"
	"time"
)

// MeetingScope classifies a meeting by attendee email domains.
type MeetingScope string

const (
	// ScopeUnknown means no attendee data was available to classify the meeting.
	ScopeUnknown MeetingScope = ""

	// ScopeInternal means every attendee shares the credential owner's domain.
	ScopeInternal MeetingScope = "internal"

	// ScopeExternal means at least one attendee is from a different domain.
	ScopeExternal MeetingScope = "external"
)

// TranscriptRecord is the canonical normalised meeting transcript.
// A record is uniquely identified by ExternalID within the provider
// namespace; the same record may be associated with several credentials.
type TranscriptRecord struct {
	// ID is the internal unique identifier.
	ID string

	// ExternalID is the provider-assigned identifier, unique per provider.
	ExternalID string

	// CredentialIDs lists the credentials this record is visible to.
	CredentialIDs []string

	// Title is the meeting title as reported by the provider.
	Title string

	// RawContent is the provider payload, preserved verbatim for
	// downstream reprocessing.
	RawContent string

	// Participants holds deduplicated, sorted attendee names.
	Participants []string

	// OccurredAt is when the meeting started, if known.
	OccurredAt *time.Time

	// LengthMinutes is derived from the meeting start and end times.
	LengthMinutes int

	// ContentLength is the character count of RawContent.
	ContentLength int

	// SourceDetail is free-text provenance, e.g. a folder path.
	SourceDetail string

	// Scope classifies the meeting as internal or external.
	Scope MeetingScope

	// Selected is the tri-state selection decision.
	Selected Selection

	// Archived hides the record from active views and export bundles.
	Archived bool

	// ExportedAt is when the record was last included in an export.
	ExportedAt *time.Time

	// CreatedAt is when the record was first ingested.
	CreatedAt time.Time
}

// DeriveScope classifies a meeting from attendee emails against the
// credential owner's domain. Returns ScopeUnknown when either side of the
// comparison is missing.
func DeriveScope(attendeeEmails []string, ownerDomain string) MeetingScope {
	if ownerDomain == "" || len(attendeeEmails) == 0 {
		return ScopeUnknown
	}
	for _, email := range attendeeEmails {
		if d := EmailDomain(email); d != "" && !strings.EqualFold(d, ownerDomain) {
			return ScopeExternal
		}
	}
	return ScopeInternal
}

// EmailDomain extracts the domain part of an email address.
// Returns empty string if the input is not an address.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// NormaliseParticipants deduplicates and sorts participant names,
// dropping empty entries.
func NormaliseParticipants(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var result []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// HasCredential reports whether the record is associated with a credential.
func (r *TranscriptRecord) HasCredential(credentialID string) bool {
	for _, id := range r.CredentialIDs {
		if id == credentialID {
			return true
		}
	}
	return false
}
