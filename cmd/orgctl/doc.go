// Package main provides orgctl, the orghub management CLI.
//
// orghub is a multi-tenant organization-management service. Each registered
// organization gets its own data partition, provisioned and torn down as the
// organization is created, renamed and deleted.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and the gorm-backed stores
//   - pkg/lifecycle: Tenant workflows (create, login, lookup, delete, rename)
//   - pkg/partition: Partition naming
//   - pkg/token: Session token signing and verification
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Generate a token-signing secret
//	export ORGHUB_TOKEN_SECRET="$(orgctl secret generate)"
//
//	# Run database migrations
//	orgctl db migrate
//
//	# Start the server
//	orgctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ORGHUB_TOKEN_SECRET: Secret used to sign session tokens
//   - ORGHUB_CONFIG_PATH: Directory holding orghub.yml
//   - ORGHUB_LOG_LEVEL: Log level (debug enables SQL logging)
//   - ORGHUB_AUDIT_ENABLED: Enable audit logging
//   - AUDIT_DATABASE_URL: Optional separate database for audit records
//   - PORT: Server port (default: 8000)
package main
