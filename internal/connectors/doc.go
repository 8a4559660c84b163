// Package connectors contains provider-specific clients.
//
// Each subpackage speaks one external provider's protocol and exposes it
// through the ports defined in internal/core/ports/driven:
//
//   - meetnotes: the meeting-notes REST API (recordings, notes, account)
//   - drive: the cloud-drive caption export endpoint (WebVTT)
//
// Connectors own their rate limiting and retry behaviour; core services
// treat a returned error as final.
package connectors
