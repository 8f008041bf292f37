// Package server provides the HTTP server for the orghub API.
//
// This package implements the HTTP server that handles all organization
// management requests. It uses gorilla/mux for routing and provides
// middleware for bearer-token authentication.
//
// # Server Setup
//
//	srv := server.NewServer(orchestrator, issuer, db, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - POST /org/create - Register an organization with its admin
//   - POST /admin/login - Authenticate an admin, returns a session token
//   - GET /org/get - Resolve an organization by name
//   - DELETE /org/delete - Soft-delete an organization and drop its partition
//   - PUT /org/update - Rename an organization, migrating its partition
//   - GET /whoami - Token introspection
//   - GET /health - Database connectivity check
package server
