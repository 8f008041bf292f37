// Package audit provides audit logging for security-relevant events.
//
// Events are written to stdout in RFC5424 syslog format and, when
// AUDIT_DATABASE_URL is set, persisted to a Postgres messages table.
// Audited events: admin authentication and organization create, delete
// and rename.
package audit
