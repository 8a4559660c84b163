// Package meetnotes implements the client for the meeting-notes provider
// REST API.
//
// The provider exposes POST list endpoints that accept a pagination block
// with an opaque continuation cursor, and GET endpoints for single-entity
// and account lookups. Authentication is a static X-API-KEY header.
//
// All requests pass through a per-client rate limiter enforcing a minimum
// inter-call spacing shared across concurrent callers; page fetches are
// retried with exponential backoff before an error is surfaced.
package meetnotes
