package paypal

import (
	"context"
	"net/http"
	"net/url"

	"paypal-vault-api/models"
)

// SetupTokenParams carries the caller-derived pieces of a setup token:
// which payer it belongs to and where the shopper lands after approval.
type SetupTokenParams struct {
	Payer     models.Payer
	ReturnURL string
	CancelURL string
}

// CreateSetupToken creates a merchant-initiated, consumer-type vaulting
// intent. A returning payer links the token to the known customer record at
// creation time.
func (c *Client) CreateSetupToken(ctx context.Context, accessToken, requestID string, params SetupTokenParams) (*SetupToken, error) {
	body := createSetupTokenRequest{
		PaymentSource: setupTokenPaymentSource{
			PayPal: setupTokenSource{
				UsageType:    "MERCHANT",
				CustomerType: "CONSUMER",
				UsagePattern: "IMMEDIATE",
				ExperienceContext: &experienceContext{
					ReturnURL: params.ReturnURL,
					CancelURL: params.CancelURL,
				},
			},
		},
	}
	if customerID, returning := params.Payer.Returning(); returning {
		body.Customer = &Customer{ID: customerID}
	}

	var token SetupToken
	if err := c.doJSON(ctx, "create setup token", http.MethodPost, "/v3/vault/setup-tokens",
		accessToken, requestID, body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// CreatePaymentToken exchanges an approved setup token for a durable
// payment-method token. A setup token can be exchanged at most once; the
// processor enforces that remotely.
func (c *Client) CreatePaymentToken(ctx context.Context, accessToken, requestID, setupTokenID string) (*PaymentToken, error) {
	var body createPaymentTokenRequest
	body.PaymentSource.Token = tokenReference{ID: setupTokenID, Type: "SETUP_TOKEN"}

	var token PaymentToken
	if err := c.doJSON(ctx, "create payment token", http.MethodPost, "/v3/vault/payment-tokens",
		accessToken, requestID, body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// ListPaymentTokens fetches all payment-method tokens vaulted for a customer.
// Read-only, no upstream side effects.
func (c *Client) ListPaymentTokens(ctx context.Context, accessToken, customerID string) (*PaymentTokenList, error) {
	path := "/v3/vault/payment-tokens?customer_id=" + url.QueryEscape(customerID)

	var list PaymentTokenList
	if err := c.doJSON(ctx, "list payment tokens", http.MethodGet, path,
		accessToken, "", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
