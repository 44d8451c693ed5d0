package models

// SetupTokenRequest is the body of POST /api/setup-tokens.
type SetupTokenRequest struct {
	CustomerID string `json:"customerId"`
}

// PaymentTokenRequest is the body of POST /api/payment-tokens. SetupTokenID is
// required.
type PaymentTokenRequest struct {
	SetupTokenID string `json:"setupTokenId"`
}

// OrderRequest is the body of POST /api/orders. All fields are optional:
// VaultID selects the vaulted path, CustomerID marks a returning payer on the
// fresh path, and Amount/Currency override the default single-SKU purchase.
type OrderRequest struct {
	CustomerID string `json:"customerId"`
	VaultID    string `json:"vaultId"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}
