package order

import (
	"context"
	"log"

	"github.com/google/uuid"

	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
	"paypal-vault-api/types"
)

// Defaults for the single-SKU checkout when the caller sends no amount.
const (
	DefaultAmount       = "100.00"
	DefaultCurrency     = "USD"
	PurchaseDescription = "Vault checkout purchase"
)

type orderAPI interface {
	CreateOrder(ctx context.Context, accessToken, requestID string, params paypal.OrderParams) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, accessToken, requestID, orderID string) (*paypal.Order, error)
}

type tokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Service is the Order Service: order creation on either the vaulted or the
// fresh-instrument path, and explicit capture for the latter.
type Service struct {
	api    orderAPI
	tokens tokenProvider
}

func NewService(api orderAPI, tokens tokenProvider) *Service {
	return &Service{api: api, tokens: tokens}
}

// CreateOrder creates a checkout order. A vaulted instrument is auto-captured
// upstream on creation; a fresh instrument requires shopper approval followed
// by CaptureOrder.
func (s *Service) CreateOrder(ctx context.Context, selector models.PaymentSelector, purchase paypal.Purchase, baseURL string) (*paypal.Order, error) {
	if purchase.Amount == "" {
		purchase.Amount = DefaultAmount
	}
	if purchase.Currency == "" {
		purchase.Currency = DefaultCurrency
	}
	if purchase.Description == "" {
		purchase.Description = PurchaseDescription
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.api.CreateOrder(ctx, accessToken, uuid.New().String(), paypal.OrderParams{
		Purchase:  purchase,
		Selector:  selector,
		ReturnURL: baseURL + "/return",
		CancelURL: baseURL + "/cancel",
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created order %s with status %s", order.ID, order.Status)
	return order, nil
}

// CaptureOrder captures an approved order by id. Failures on orders not in an
// approvable state surface as upstream errors.
func (s *Service) CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error) {
	if orderID == "" {
		return nil, types.NewValidationError("orderId", "order id is required")
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.api.CaptureOrder(ctx, accessToken, uuid.New().String(), orderID)
	if err != nil {
		return nil, err
	}

	log.Printf("Captured order %s with status %s", order.ID, order.Status)
	return order, nil
}
