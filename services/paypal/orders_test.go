package paypal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paypal-vault-api/models"
	"paypal-vault-api/types"
)

func vaultedOrderParams(vaultID string) OrderParams {
	return OrderParams{
		Purchase:  Purchase{Amount: "100.00", Currency: "USD", Description: "Vault checkout purchase"},
		Selector:  models.VaultedInstrument{VaultID: vaultID},
		ReturnURL: "https://shop.example.com/return",
		CancelURL: "https://shop.example.com/cancel",
	}
}

func freshOrderParams(payer models.Payer) OrderParams {
	params := vaultedOrderParams("")
	params.Selector = models.FreshInstrument{Payer: payer}
	return params
}

func TestCreateOrder_VaultedInstrument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/checkout/orders" {
			t.Errorf("expected path /v2/checkout/orders, got %s", r.URL.Path)
		}
		if r.Header.Get("PayPal-Request-Id") == "" {
			t.Error("expected PayPal-Request-Id header")
		}

		body := decodeBody(t, r)
		if body["intent"] != "CAPTURE" {
			t.Errorf("expected intent CAPTURE, got %v", body["intent"])
		}

		source := dig(t, body, "payment_source")
		if _, present := source["paypal"]; present {
			t.Error("vaulted order must not carry a paypal redirect source")
		}
		token := dig(t, source, "token")
		if token["id"] != "PT1" {
			t.Errorf("expected vault id PT1, got %v", token["id"])
		}
		if token["type"] != "PAYMENT_METHOD_TOKEN" {
			t.Errorf("expected type PAYMENT_METHOD_TOKEN, got %v", token["type"])
		}

		units, ok := body["purchase_units"].([]interface{})
		if !ok || len(units) != 1 {
			t.Fatalf("expected 1 purchase unit, got %v", body["purchase_units"])
		}
		amount := dig(t, units[0].(map[string]interface{}), "amount")
		if amount["currency_code"] != "USD" || amount["value"] != "100.00" {
			t.Errorf("unexpected amount: %v", amount)
		}

		w.Write([]byte(`{"id":"O1","status":"COMPLETED","payment_source":{"paypal":{}},"purchase_units":[{"payments":{"captures":[{"id":"CAP1"}]}}]}`))
	}))
	defer server.Close()

	order, err := testClient(server.URL).CreateOrder(context.Background(), "app-token", "req-1", vaultedOrderParams("PT1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "O1" || order.Status != "COMPLETED" {
		t.Errorf("expected order O1/COMPLETED, got %s/%s", order.ID, order.Status)
	}
	if len(order.PurchaseUnits) == 0 {
		t.Error("expected capture details passed through in purchase_units")
	}
}

func TestCreateOrder_FreshInstrumentVaultsOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		source := dig(t, decodeBody(t, r), "payment_source")
		if _, present := source["token"]; present {
			t.Error("fresh order must not carry a payment-method token source")
		}

		paypalSource := dig(t, source, "paypal")
		vault := dig(t, paypalSource, "attributes", "vault")
		if vault["store_in_vault"] != "ON_SUCCESS" {
			t.Errorf("expected store_in_vault ON_SUCCESS, got %v", vault["store_in_vault"])
		}
		if _, present := dig(t, paypalSource, "attributes")["customer"]; present {
			t.Error("new payer must not attach a customer id to the vault block")
		}
		experience := dig(t, paypalSource, "experience_context")
		if experience["return_url"] != "https://shop.example.com/return" {
			t.Errorf("expected return url, got %v", experience["return_url"])
		}

		w.Write([]byte(`{"id":"O2","status":"PAYER_ACTION_REQUIRED","links":[{"href":"https://paypal/approve","rel":"payer-action"}]}`))
	}))
	defer server.Close()

	order, err := testClient(server.URL).CreateOrder(context.Background(), "app-token", "req-2", freshOrderParams(models.NewPayer()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != "PAYER_ACTION_REQUIRED" {
		t.Errorf("expected PAYER_ACTION_REQUIRED, got %s", order.Status)
	}
}

func TestCreateOrder_ReturningPayerAttachesCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attributes := dig(t, decodeBody(t, r), "payment_source", "paypal", "attributes")
		customer := dig(t, attributes, "customer")
		if customer["id"] != "C1" {
			t.Errorf("expected customer C1 on the vault block, got %v", customer["id"])
		}
		w.Write([]byte(`{"id":"O3","status":"CREATED"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).CreateOrder(context.Background(), "app-token", "req-3", freshOrderParams(models.ReturningPayer("C1")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCaptureOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2/checkout/orders/O2/capture" {
			t.Errorf("expected capture path, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"O2","status":"COMPLETED"}`))
	}))
	defer server.Close()

	order, err := testClient(server.URL).CaptureOrder(context.Background(), "app-token", "req-4", "O2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != "COMPLETED" {
		t.Errorf("expected COMPLETED, got %s", order.Status)
	}
}

func TestCaptureOrder_NotApprovable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_NOT_APPROVED"}]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).CaptureOrder(context.Background(), "app-token", "req-5", "O9")

	var upstreamErr *types.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", upstreamErr.StatusCode)
	}
}
