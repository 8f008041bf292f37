package endpoints

import (
	"orghub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterOrgsEndpoints(srv)
	RegisterLoginEndpoint(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoints(srv)
}
