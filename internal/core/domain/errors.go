package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates a malformed provider record.
	// Counted as a skip during ingestion, never retried.
	ErrValidation = errors.New("validation failed")

	// Authentication Errors.

	// ErrAuthRequired indicates no credential is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the credential was rejected by the provider.
	// Fatal to an ingestion run; never retried.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrCredentialDisabled indicates the credential has been disabled
	// after a clean run drained its source.
	ErrCredentialDisabled = errors.New("credential disabled")

	// Provider Errors.

	// ErrRateLimited indicates the provider rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
