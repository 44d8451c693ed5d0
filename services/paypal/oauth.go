package paypal

import (
	"context"
	"fmt"
	"net/url"

	"paypal-vault-api/models"
	"paypal-vault-api/types"
)

// GetAccessToken performs the client-credentials exchange and returns the
// app-level bearer token together with its advertised lifetime.
func (c *Client) GetAccessToken(ctx context.Context) (*AccessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	var token AccessToken
	if err := c.postForm(ctx, "access token", "/v1/oauth2/token", form, &token); err != nil {
		return nil, err
	}
	if token.Token == "" {
		return nil, &types.UpstreamError{Operation: "access token",
			Err: fmt.Errorf("no access token in response")}
	}
	return &token, nil
}

// GenerateIdentityToken mints a short-lived user identity token for the
// browser SDK. A returning payer adds target_customer_id so the SDK
// recognizes the shopper; a new payer omits the field entirely.
func (c *Client) GenerateIdentityToken(ctx context.Context, payer models.Payer) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("response_type", "id_token")
	if customerID, returning := payer.Returning(); returning {
		form.Set("target_customer_id", customerID)
	}

	var resp identityTokenResponse
	if err := c.postForm(ctx, "identity token", "/v1/oauth2/token", form, &resp); err != nil {
		return "", err
	}
	if resp.IDToken == "" {
		return "", &types.UpstreamError{Operation: "identity token",
			Err: fmt.Errorf("no id_token in response")}
	}
	return resp.IDToken, nil
}
