package handlers

import (
	"errors"
	"log"
	"net/http"

	"paypal-vault-api/types"
	"paypal-vault-api/utils"
)

// respondError maps the error taxonomy onto HTTP statuses: validation errors
// become 400, everything else 500. Upstream bodies are forwarded under the
// details key so the browser sees what the processor said.
func respondError(w http.ResponseWriter, requestID string, err error) {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		log.Printf("[RequestID: %s] Validation failure: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var upstreamErr *types.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Printf("[RequestID: %s] Upstream failure: %v", requestID, err)
		utils.SendUpstreamErrorResponse(w, http.StatusInternalServerError, upstreamErr.Error(), upstreamErr.Body)
		return
	}

	var configErr *types.ConfigError
	if errors.As(err, &configErr) {
		log.Printf("[RequestID: %s] Configuration failure: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, configErr.Error())
		return
	}

	log.Printf("[RequestID: %s] Unexpected failure: %v", requestID, err)
	utils.SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// requestBaseURL reconstructs the scheme and host the browser used, honoring
// the proxy protocol header, so return/cancel URLs land back on this site.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
