package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
	"paypal-vault-api/utils"
)

type orderService interface {
	CreateOrder(ctx context.Context, selector models.PaymentSelector, purchase paypal.Purchase, baseURL string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

// OrderHandler exposes order creation and capture.
type OrderHandler struct {
	service orderService
}

func NewOrderHandler(service orderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateOrder handles POST /api/orders. A vaultId selects the auto-captured
// vaulted path; otherwise the order goes through the PayPal approval flow and
// vaults the instrument on success.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req models.OrderRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var selector models.PaymentSelector
	if req.VaultID != "" {
		log.Printf("[RequestID: %s] Creating order with vaulted instrument %s", requestID, req.VaultID)
		selector = models.VaultedInstrument{VaultID: req.VaultID}
	} else {
		log.Printf("[RequestID: %s] Creating order with fresh instrument", requestID)
		selector = models.FreshInstrument{Payer: models.PayerFromCustomerID(req.CustomerID)}
	}

	order, err := h.service.CreateOrder(r.Context(), selector, paypal.Purchase{
		Amount:   req.Amount,
		Currency: req.Currency,
	}, requestBaseURL(r))
	if err != nil {
		respondError(w, requestID, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, order)
}

// CaptureOrder handles POST /api/orders/{orderId}/capture.
func (h *OrderHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	orderID := mux.Vars(r)["orderId"]
	log.Printf("[RequestID: %s] Capturing order %s", requestID, orderID)

	order, err := h.service.CaptureOrder(r.Context(), orderID)
	if err != nil {
		respondError(w, requestID, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, order)
}
