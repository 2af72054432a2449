package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/middlewares"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// StatusResponse is the envelope shared by all JSON endpoints
// swagger:model StatusResponse
type StatusResponse struct {
	// Outcome of the request
	// default: success
	Status string `json:"status"`

	// Human readable message
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, StatusResponse{Status: statusError, Message: message})
}

// currentUser returns the authenticated user or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}
