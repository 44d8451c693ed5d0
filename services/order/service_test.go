package order

import (
	"context"
	"errors"
	"testing"

	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
	"paypal-vault-api/types"
)

type orderAPIMock struct {
	calls       int
	lastParams  paypal.OrderParams
	lastOrderID string
	order       *paypal.Order
	err         error
}

func (m *orderAPIMock) CreateOrder(ctx context.Context, accessToken, requestID string, params paypal.OrderParams) (*paypal.Order, error) {
	m.calls++
	m.lastParams = params
	return m.order, m.err
}

func (m *orderAPIMock) CaptureOrder(ctx context.Context, accessToken, requestID, orderID string) (*paypal.Order, error) {
	m.calls++
	m.lastOrderID = orderID
	return m.order, m.err
}

type tokenProviderMock struct {
	calls int
	err   error
}

func (m *tokenProviderMock) AccessToken(ctx context.Context) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return "app-token", nil
}

func TestCreateOrder_AppliesPurchaseDefaults(t *testing.T) {
	api := &orderAPIMock{order: &paypal.Order{ID: "O1", Status: "CREATED"}}
	service := NewService(api, &tokenProviderMock{})

	_, err := service.CreateOrder(context.Background(),
		models.FreshInstrument{Payer: models.NewPayer()}, paypal.Purchase{}, "https://shop.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	purchase := api.lastParams.Purchase
	if purchase.Amount != DefaultAmount {
		t.Errorf("expected default amount %s, got %s", DefaultAmount, purchase.Amount)
	}
	if purchase.Currency != DefaultCurrency {
		t.Errorf("expected default currency %s, got %s", DefaultCurrency, purchase.Currency)
	}
	if purchase.Description != PurchaseDescription {
		t.Errorf("expected default description, got %s", purchase.Description)
	}
	if api.lastParams.ReturnURL != "https://shop.example.com/return" {
		t.Errorf("unexpected return url: %s", api.lastParams.ReturnURL)
	}
}

func TestCreateOrder_CallerOverridesPurchase(t *testing.T) {
	api := &orderAPIMock{order: &paypal.Order{ID: "O2", Status: "COMPLETED"}}
	service := NewService(api, &tokenProviderMock{})

	_, err := service.CreateOrder(context.Background(),
		models.VaultedInstrument{VaultID: "PT1"},
		paypal.Purchase{Amount: "49.99", Currency: "EUR"}, "https://shop.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.lastParams.Purchase.Amount != "49.99" || api.lastParams.Purchase.Currency != "EUR" {
		t.Errorf("expected caller-supplied purchase, got %+v", api.lastParams.Purchase)
	}
	selector, ok := api.lastParams.Selector.(models.VaultedInstrument)
	if !ok || selector.VaultID != "PT1" {
		t.Errorf("expected vaulted selector PT1, got %+v", api.lastParams.Selector)
	}
}

func TestCaptureOrder_RequiresOrderID(t *testing.T) {
	api := &orderAPIMock{}
	service := NewService(api, &tokenProviderMock{})

	_, err := service.CaptureOrder(context.Background(), "")

	var validationErr *types.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if api.calls != 0 {
		t.Errorf("expected no upstream calls, got %d", api.calls)
	}
}

func TestCaptureOrder_Success(t *testing.T) {
	api := &orderAPIMock{order: &paypal.Order{ID: "O1", Status: "COMPLETED"}}
	service := NewService(api, &tokenProviderMock{})

	order, err := service.CaptureOrder(context.Background(), "O1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastOrderID != "O1" {
		t.Errorf("expected capture of O1, got %s", api.lastOrderID)
	}
	if order.Status != "COMPLETED" {
		t.Errorf("expected COMPLETED, got %s", order.Status)
	}
}

func TestCreateOrder_TokenFetchFailureFailsRequest(t *testing.T) {
	upstreamErr := &types.UpstreamError{Operation: "access token", StatusCode: 500}
	api := &orderAPIMock{}
	service := NewService(api, &tokenProviderMock{err: upstreamErr})

	_, err := service.CreateOrder(context.Background(),
		models.VaultedInstrument{VaultID: "PT1"}, paypal.Purchase{}, "https://shop.example.com")

	var got *types.UpstreamError
	if !errors.As(err, &got) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if api.calls != 0 {
		t.Errorf("expected no order call after token failure, got %d", api.calls)
	}
}
