package endpoints

import (
	"encoding/json"
	"net/http"

	"orghub/pkg/lifecycle"
)

func respondWithError(w http.ResponseWriter, code int, detail interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"detail": detail})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusForKind maps workflow failure kinds to HTTP statuses. Conflicts map
// to 400 rather than 409, keeping the wire contract of the service this one
// replaces.
func statusForKind(kind lifecycle.Kind) int {
	switch kind {
	case lifecycle.KindConflict:
		return http.StatusBadRequest
	case lifecycle.KindUnauthorized:
		return http.StatusUnauthorized
	case lifecycle.KindForbidden:
		return http.StatusForbidden
	case lifecycle.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondWithWorkflowError(w http.ResponseWriter, err error) {
	if kind, ok := lifecycle.KindOf(err); ok {
		respondWithError(w, statusForKind(kind), err.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}
