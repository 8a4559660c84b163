package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveScope_AllInternal(t *testing.T) {
	scope := DeriveScope([]string{"a@acme.io", "b@acme.io"}, "acme.io")
	assert.Equal(t, ScopeInternal, scope)
}

func TestDeriveScope_OneExternal(t *testing.T) {
	scope := DeriveScope([]string{"a@acme.io", "guest@other.com"}, "acme.io")
	assert.Equal(t, ScopeExternal, scope)
}

func TestDeriveScope_CaseInsensitiveDomains(t *testing.T) {
	scope := DeriveScope([]string{"a@Acme.IO"}, "acme.io")
	assert.Equal(t, ScopeInternal, scope)
}

func TestDeriveScope_NoAttendees(t *testing.T) {
	assert.Equal(t, ScopeUnknown, DeriveScope(nil, "acme.io"))
}

func TestDeriveScope_NoOwnerDomain(t *testing.T) {
	assert.Equal(t, ScopeUnknown, DeriveScope([]string{"a@acme.io"}, ""))
}

func TestDeriveScope_MalformedAddressIgnored(t *testing.T) {
	// Entries without a domain cannot prove the meeting external.
	scope := DeriveScope([]string{"not-an-email", "a@acme.io"}, "acme.io")
	assert.Equal(t, ScopeInternal, scope)
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "acme.io", EmailDomain("user@acme.io"))
	assert.Equal(t, "", EmailDomain("no-at-sign"))
	assert.Equal(t, "", EmailDomain("trailing@"))
}

func TestNormaliseParticipants_DedupAndSort(t *testing.T) {
	got := NormaliseParticipants([]string{"Zoe", "Anna", "Zoe", "  ", "Mara"})
	assert.Equal(t, []string{"Anna", "Mara", "Zoe"}, got)
}

func TestNormaliseParticipants_Empty(t *testing.T) {
	assert.Empty(t, NormaliseParticipants(nil))
}

func TestTranscriptRecord_HasCredential(t *testing.T) {
	rec := TranscriptRecord{CredentialIDs: []string{"cred-1", "cred-2"}}
	assert.True(t, rec.HasCredential("cred-2"))
	assert.False(t, rec.HasCredential("cred-3"))
}
