package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"paypal-vault-api/models"
	"paypal-vault-api/utils"
)

type clientTokenService interface {
	GenerateClientToken(ctx context.Context, payer models.Payer) (string, error)
}

// TokenHandler exposes identity token minting to the checkout page.
type TokenHandler struct {
	service clientTokenService
}

func NewTokenHandler(service clientTokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

// GenerateClientToken handles GET /api/generate-client-token. An optional
// customer_id query parameter marks the shopper as a returning payer.
func (h *TokenHandler) GenerateClientToken(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	payer := models.PayerFromCustomerID(r.URL.Query().Get("customer_id"))
	if customerID, returning := payer.Returning(); returning {
		log.Printf("[RequestID: %s] Generating client token for returning customer %s", requestID, customerID)
	} else {
		log.Printf("[RequestID: %s] Generating client token for new payer", requestID)
	}

	idToken, err := h.service.GenerateClientToken(r.Context(), payer)
	if err != nil {
		respondError(w, requestID, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, models.ClientTokenResponse{IDToken: idToken})
}
