package vault

import (
	"context"
	"log"

	"github.com/google/uuid"

	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
	"paypal-vault-api/types"
)

type vaultAPI interface {
	CreateSetupToken(ctx context.Context, accessToken, requestID string, params paypal.SetupTokenParams) (*paypal.SetupToken, error)
	CreatePaymentToken(ctx context.Context, accessToken, requestID, setupTokenID string) (*paypal.PaymentToken, error)
	ListPaymentTokens(ctx context.Context, accessToken, customerID string) (*paypal.PaymentTokenList, error)
}

type tokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Service is the Vault Service: setup-token creation, exchange for a durable
// payment-method token, and listing a customer's vaulted instruments.
type Service struct {
	api    vaultAPI
	tokens tokenProvider
}

func NewService(api vaultAPI, tokens tokenProvider) *Service {
	return &Service{api: api, tokens: tokens}
}

// CreateSetupToken creates a vaulting intent. Return/cancel URLs are derived
// from the inbound request's base URL; a returning payer links the token to
// the known customer at creation time.
func (s *Service) CreateSetupToken(ctx context.Context, payer models.Payer, baseURL string) (*paypal.SetupToken, error) {
	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.api.CreateSetupToken(ctx, accessToken, uuid.New().String(), paypal.SetupTokenParams{
		Payer:     payer,
		ReturnURL: baseURL + "/return",
		CancelURL: baseURL + "/cancel",
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created setup token %s with status %s", token.ID, token.Status)
	return token, nil
}

// ExchangeSetupToken turns an approved setup token into a payment-method
// token. The setup token id is required; nothing is sent upstream without it.
func (s *Service) ExchangeSetupToken(ctx context.Context, setupTokenID string) (*paypal.PaymentToken, error) {
	if setupTokenID == "" {
		return nil, types.NewValidationError("setupTokenId", "setup token id is required")
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.api.CreatePaymentToken(ctx, accessToken, uuid.New().String(), setupTokenID)
	if err != nil {
		return nil, err
	}

	log.Printf("Exchanged setup token %s for payment token %s", setupTokenID, token.ID)
	return token, nil
}

// ListPaymentTokens fetches a customer's vaulted payment-method tokens.
func (s *Service) ListPaymentTokens(ctx context.Context, customerID string) (*paypal.PaymentTokenList, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customerId", "customer id is required")
	}

	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return s.api.ListPaymentTokens(ctx, accessToken, customerID)
}
