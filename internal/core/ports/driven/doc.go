// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MeetingProvider: Fetches recordings and notes from the transcript provider
//   - TranscriptStore: Transcript persistence and lifecycle state
//   - CredentialStore: Credential persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - CaptionFetcher: Drive caption export. Only the HTTP-direct path lives
//     here; browser automation is an external escalation, not modelled.
//   - ProgressSink: Human-readable run reporting. A nil-safe no-op sink is
//     used when the caller does not care.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
