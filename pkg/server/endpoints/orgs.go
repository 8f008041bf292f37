package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"orghub/pkg/audit"
	"orghub/pkg/config"
	"orghub/pkg/server"
	"orghub/pkg/server/middleware"
)

var validate = validator.New()

// CreateOrgRequest is the payload for POST /org/create
type CreateOrgRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=2"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
}

// UpdateOrgRequest is the payload for PUT /org/update
type UpdateOrgRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=2"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
}

// RegisterOrgsEndpoints registers the organization lifecycle endpoints
func RegisterOrgsEndpoints(s *server.Server) {
	orchestrator := s.Orchestrator
	router := s.Router

	bearer := middleware.NewBearerAuthenticator(s.Issuer)

	// POST /org/create - Register an organization with its admin (no auth)
	router.HandleFunc(
		"/org/create",
		func(writer http.ResponseWriter, request *http.Request) {
			var req CreateOrgRequest
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

			org, err := orchestrator.CreateOrganization(req.OrganizationName, req.Email, req.Password)
			if err != nil {
				audit.Log(audit.OrgCreateEvent{
					OrgName:      req.OrganizationName,
					AdminEmail:   req.Email,
					ClientIP:     request.RemoteAddr,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithWorkflowError(writer, err)
				return
			}

			audit.Log(audit.OrgCreateEvent{
				OrgName:     org.Name,
				OrgID:       org.ID,
				PartitionID: org.PartitionID,
				AdminEmail:  req.Email,
				ClientIP:    request.RemoteAddr,
				Success:     true,
			})

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"message":           "Organization created successfully",
				"organization_id":   org.ID,
				"organization_name": org.Name,
				"collection_name":   org.PartitionID,
				"admin_email":       req.Email,
			})
		},
	).Methods("POST")

	// GET /org/get?organization_name= - Resolve an organization (no auth)
	router.HandleFunc(
		"/org/get",
		func(writer http.ResponseWriter, request *http.Request) {
			name := request.URL.Query().Get("organization_name")
			if name == "" {
				respondWithError(writer, http.StatusBadRequest, "organization_name is required")
				return
			}

			org, err := orchestrator.LookupOrganization(name)
			if err != nil {
				respondWithWorkflowError(writer, err)
				return
			}

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"organization_id":   org.ID,
				"organization_name": org.Name,
				"collection_name":   org.PartitionID,
			})
		},
	).Methods("GET")

	// DELETE /org/delete?organization_name= - Soft-delete and drop partition
	router.Handle(
		"/org/delete",
		bearer.Middleware(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, ok := middleware.ClaimsFromContext(request.Context())
			if !ok {
				respondWithError(writer, http.StatusUnauthorized, "Invalid token")
				return
			}

			name := request.URL.Query().Get("organization_name")
			if name == "" {
				respondWithError(writer, http.StatusBadRequest, "organization_name is required")
				return
			}

			org, err := orchestrator.DeleteOrganization(name, claims)
			if err != nil {
				audit.Log(audit.OrgDeleteEvent{
					OrgName:      name,
					AdminID:      claims.AdminID,
					ClientIP:     request.RemoteAddr,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithWorkflowError(writer, err)
				return
			}

			audit.Log(audit.OrgDeleteEvent{
				OrgName:     org.Name,
				OrgID:       org.ID,
				PartitionID: org.PartitionID,
				AdminID:     claims.AdminID,
				ClientIP:    request.RemoteAddr,
				Success:     true,
			})

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"message": "Organization deleted (soft) and collection dropped",
			})
		})),
	).Methods("DELETE")

	// PUT /org/update - Rename an organization, migrating its partition.
	// The bearer token gates the request; the rename itself re-authenticates
	// with the email and password in the body.
	router.Handle(
		"/org/update",
		bearer.Middleware(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var req UpdateOrgRequest
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

			result, err := orchestrator.RenameOrganization(req.OrganizationName, req.Email, req.Password)
			if err != nil {
				audit.Log(audit.OrgRenameEvent{
					NewName:      req.OrganizationName,
					AdminEmail:   req.Email,
					ClientIP:     request.RemoteAddr,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithWorkflowError(writer, err)
				return
			}

			audit.Log(audit.OrgRenameEvent{
				OldName:      result.OldName,
				NewName:      result.NewName,
				OldPartition: result.OldPartitionID,
				NewPartition: result.NewPartitionID,
				AdminEmail:   req.Email,
				ClientIP:     request.RemoteAddr,
				Success:      true,
			})

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"message":        "Organization updated successfully",
				"old_name":       result.OldName,
				"new_name":       result.NewName,
				"old_collection": result.OldPartitionID,
				"new_collection": result.NewPartitionID,
			})
		})),
	).Methods("PUT")
}
