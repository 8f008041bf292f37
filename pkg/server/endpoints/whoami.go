package endpoints

import (
	"net/http"

	"orghub/pkg/server"
	"orghub/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	AdminID  string `json:"admin_id"`
	OrgID    string `json:"org_id,omitempty"`
	Email    string `json:"email"`
	TokenIAT int64  `json:"token_iat,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	bearer := middleware.NewBearerAuthenticator(s.Issuer)

	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(bearer.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			http.Error(w, "Unable to determine identity", http.StatusUnauthorized)
			return
		}

		response := WhoamiResponse{
			AdminID: claims.AdminID,
			OrgID:   claims.OrgID,
			Email:   claims.Email,
		}
		if claims.IssuedAt != nil {
			response.TokenIAT = claims.IssuedAt.Unix()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
