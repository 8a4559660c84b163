// Package services implements the driving ports over the driven ports.
//
// The ingestion orchestrator, the notes index builder, the lifecycle
// service and the export packager live here. Services contain all
// business logic; they depend only on domain types and port interfaces.
package services
