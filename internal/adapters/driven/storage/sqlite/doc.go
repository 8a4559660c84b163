// Package sqlite provides SQLite-backed implementations of the
// transcript and credential stores.
//
// A single Store owns the database connection and hands out the
// per-interface wrappers:
//
//	store, err := sqlite.NewStore(dataDir)
//	transcripts := store.TranscriptStore()
//	credentials := store.CredentialStore()
//
// Schema changes ship as embedded SQL migrations that run on open.
package sqlite
