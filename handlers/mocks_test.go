package handlers

import (
	"context"

	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
)

type clientTokenServiceMock struct {
	lastPayer models.Payer
	idToken   string
	err       error
}

func (m *clientTokenServiceMock) GenerateClientToken(ctx context.Context, payer models.Payer) (string, error) {
	m.lastPayer = payer
	if m.err != nil {
		return "", m.err
	}
	return m.idToken, nil
}

type vaultServiceMock struct {
	calls            int
	lastPayer        models.Payer
	lastBaseURL      string
	lastSetupTokenID string
	lastCustomerID   string
	setupToken       *paypal.SetupToken
	paymentToken     *paypal.PaymentToken
	tokenList        *paypal.PaymentTokenList
	err              error
}

func (m *vaultServiceMock) CreateSetupToken(ctx context.Context, payer models.Payer, baseURL string) (*paypal.SetupToken, error) {
	m.calls++
	m.lastPayer = payer
	m.lastBaseURL = baseURL
	return m.setupToken, m.err
}

func (m *vaultServiceMock) ExchangeSetupToken(ctx context.Context, setupTokenID string) (*paypal.PaymentToken, error) {
	m.calls++
	m.lastSetupTokenID = setupTokenID
	return m.paymentToken, m.err
}

func (m *vaultServiceMock) ListPaymentTokens(ctx context.Context, customerID string) (*paypal.PaymentTokenList, error) {
	m.calls++
	m.lastCustomerID = customerID
	return m.tokenList, m.err
}

type orderServiceMock struct {
	lastSelector models.PaymentSelector
	lastPurchase paypal.Purchase
	lastBaseURL  string
	lastOrderID  string
	order        *paypal.Order
	err          error
}

func (m *orderServiceMock) CreateOrder(ctx context.Context, selector models.PaymentSelector, purchase paypal.Purchase, baseURL string) (*paypal.Order, error) {
	m.lastSelector = selector
	m.lastPurchase = purchase
	m.lastBaseURL = baseURL
	return m.order, m.err
}

func (m *orderServiceMock) CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error) {
	m.lastOrderID = orderID
	return m.order, m.err
}
