package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"orghub/pkg/audit"
	"orghub/pkg/config"
	"orghub/pkg/server"
)

// AdminLoginRequest is the payload for POST /admin/login
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterLoginEndpoint registers the admin authentication endpoint
func RegisterLoginEndpoint(s *server.Server) {
	orchestrator := s.Orchestrator

	// POST /admin/login - Authenticate an admin, returns a bearer token
	s.Router.HandleFunc(
		"/admin/login",
		func(writer http.ResponseWriter, request *http.Request) {
			var req AdminLoginRequest
			if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
				respondWithError(writer, http.StatusBadRequest, "Invalid request body")
				return
			}

			if err := validate.Struct(req); err != nil {
				respondWithError(writer, http.StatusBadRequest, err.Error())
				return
			}

			if min := config.Get().MinPasswordLength; len(req.Password) < min {
				respondWithError(writer, http.StatusBadRequest,
					fmt.Sprintf("password must be at least %d characters", min))
				return
			}

			session, err := orchestrator.AuthenticateAdmin(req.Email, req.Password)
			if err != nil {
				audit.Log(audit.AuthenticateEvent{
					Email:        req.Email,
					ClientIP:     request.RemoteAddr,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithWorkflowError(writer, err)
				return
			}

			audit.Log(audit.AuthenticateEvent{
				Email:    req.Email,
				ClientIP: request.RemoteAddr,
				Success:  true,
			})

			// organization_id is null for an admin without an active org
			var orgID interface{}
			if session.OrganizationID != "" {
				orgID = session.OrganizationID
			}

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"access_token":    session.AccessToken,
				"token_type":      "bearer",
				"organization_id": orgID,
			})
		},
	).Methods("POST")
}
