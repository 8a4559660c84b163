package domain

import "time"

// Credential is an API key scoping access to one provider account.
// Many transcript records may be visible to, and associated with,
// multiple credentials.
type Credential struct {
	// ID is the unique identifier for the credential.
	ID string

	// Label is the human-readable name for this credential.
	Label string

	// APIKey is the provider API key sent on every request.
	APIKey string

	// OwnerEmail is the provider account's email, resolved from the
	// provider's "who am I" endpoint on each ingestion run.
	OwnerEmail string

	// Enabled controls whether ingestion runs use this credential.
	// Cleared automatically after an error-free run drains the source.
	Enabled bool

	// CreatedAt is when the credential was added.
	CreatedAt time.Time
}

// OwnerDomain returns the email domain of the credential owner,
// or empty string if the owner email is unknown.
func (c *Credential) OwnerDomain() string {
	return EmailDomain(c.OwnerEmail)
}
