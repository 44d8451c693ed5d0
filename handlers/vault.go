package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
	"paypal-vault-api/utils"
)

type vaultService interface {
	CreateSetupToken(ctx context.Context, payer models.Payer, baseURL string) (*paypal.SetupToken, error)
	ExchangeSetupToken(ctx context.Context, setupTokenID string) (*paypal.PaymentToken, error)
	ListPaymentTokens(ctx context.Context, customerID string) (*paypal.PaymentTokenList, error)
}

// VaultHandler exposes the setup-token and payment-token vault flow.
type VaultHandler struct {
	service vaultService
}

func NewVaultHandler(service vaultService) *VaultHandler {
	return &VaultHandler{service: service}
}

// CreateSetupToken handles POST /api/setup-tokens. The body is optional; a
// customerId links the setup token to a returning customer.
func (h *VaultHandler) CreateSetupToken(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req models.SetupTokenRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.CreateSetupToken(r.Context(), models.PayerFromCustomerID(req.CustomerID), requestBaseURL(r))
	if err != nil {
		respondError(w, requestID, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, token)
}

// CreatePaymentToken handles POST /api/payment-tokens. setupTokenId is
// required; without it nothing is sent upstream.
func (h *VaultHandler) CreatePaymentToken(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req models.PaymentTokenRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.ExchangeSetupToken(r.Context(), req.SetupTokenID)
	if err != nil {
		respondError(w, requestID, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, token)
}

// ListPaymentTokens handles GET /api/payment-tokens/{customerId}.
func (h *VaultHandler) ListPaymentTokens(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	customerID := mux.Vars(r)["customerId"]
	list, err := h.service.ListPaymentTokens(r.Context(), customerID)
	if err != nil {
		respondError(w, requestID, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, list)
}

// decodeOptionalBody decodes a JSON body, treating an empty body as the zero
// request. Endpoints with only optional fields accept bare POSTs.
func decodeOptionalBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
