package paypal

import (
	"context"
	"fmt"
	"net/http"

	"paypal-vault-api/models"
)

// OrderParams describes one checkout attempt: what is being bought and how it
// is being paid for.
type OrderParams struct {
	Purchase  Purchase
	Selector  models.PaymentSelector
	ReturnURL string
	CancelURL string
}

// CreateOrder creates a CAPTURE-intent order. A vaulted instrument pays with
// the existing payment-method token and is auto-captured upstream; a fresh
// instrument goes through the PayPal approval flow with store_in_vault set to
// ON_SUCCESS, attaching the customer id when the payer is a returning one.
func (c *Client) CreateOrder(ctx context.Context, accessToken, requestID string, params OrderParams) (*Order, error) {
	body := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			Amount: orderAmount{
				CurrencyCode: params.Purchase.Currency,
				Value:        params.Purchase.Amount,
			},
			Description: params.Purchase.Description,
		}},
	}

	switch sel := params.Selector.(type) {
	case models.VaultedInstrument:
		body.PaymentSource.Token = &tokenReference{ID: sel.VaultID, Type: "PAYMENT_METHOD_TOKEN"}
	case models.FreshInstrument:
		source := &paypalOrderSource{
			ExperienceContext: &experienceContext{
				ReturnURL:  params.ReturnURL,
				CancelURL:  params.CancelURL,
				UserAction: "PAY_NOW",
			},
			Attributes: &paymentSourceAttributes{
				Vault: vaultInstruction{
					StoreInVault: "ON_SUCCESS",
					UsageType:    "MERCHANT",
					CustomerType: "CONSUMER",
				},
			},
		}
		if customerID, returning := sel.Payer.Returning(); returning {
			source.Attributes.Customer = &Customer{ID: customerID}
		}
		body.PaymentSource.PayPal = source
	default:
		return nil, fmt.Errorf("unsupported payment selector %T", params.Selector)
	}

	var order Order
	if err := c.doJSON(ctx, "create order", http.MethodPost, "/v2/checkout/orders",
		accessToken, requestID, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CaptureOrder captures an approved order. Only used on the fresh-instrument
// path; vaulted orders are captured on creation.
func (c *Client) CaptureOrder(ctx context.Context, accessToken, requestID, orderID string) (*Order, error) {
	path := "/v2/checkout/orders/" + orderID + "/capture"

	var order Order
	if err := c.doJSON(ctx, "capture order", http.MethodPost, path,
		accessToken, requestID, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
