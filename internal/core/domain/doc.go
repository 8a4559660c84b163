// Package domain defines the core business entities for minutes-cli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TranscriptRecord: A normalised meeting transcript with lifecycle state
//   - Credential: An API key scoping access to one provider account
//   - Note: Meeting-notes metadata joined onto recordings during ingestion
//   - RunSummary: Per-invocation counters for an ingestion run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
