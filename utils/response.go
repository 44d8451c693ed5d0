package utils

import (
	"encoding/json"
	"net/http"

	"paypal-vault-api/models"
)

func SendJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func SendErrorResponse(w http.ResponseWriter, status int, message string) {
	SendJSONResponse(w, status, models.ErrorResponse{Error: message})
}

// SendUpstreamErrorResponse forwards the processor's error body verbatim
// under the details key.
func SendUpstreamErrorResponse(w http.ResponseWriter, status int, message string, details json.RawMessage) {
	SendJSONResponse(w, status, models.ErrorResponse{Error: message, Details: details})
}
