package endpoints

import (
	"net/http"

	"orghub/pkg/server"
)

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the health endpoint
func RegisterStatusEndpoints(s *server.Server) {
	db := s.DB

	// GET /health - Database connectivity check (no auth required)
	s.Router.HandleFunc(
		"/health",
		func(writer http.ResponseWriter, request *http.Request) {
			if db != nil {
				sqlDB, err := db.DB()
				if err == nil {
					err = sqlDB.Ping()
				}
				if err != nil {
					respondWithJSON(writer, http.StatusServiceUnavailable, HealthResponse{
						Status: "error",
						Error:  "database connectivity check failed",
					})
					return
				}
			}

			respondWithJSON(writer, http.StatusOK, HealthResponse{Status: "ok"})
		},
	).Methods("GET")
}
