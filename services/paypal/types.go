package paypal

import "encoding/json"

// Customer is the processor's durable shopper identifier tying vaulted
// instruments and identity tokens together.
type Customer struct {
	ID string `json:"id,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// AccessToken is the result of the client-credentials grant.
type AccessToken struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type identityTokenResponse struct {
	IDToken string `json:"id_token"`
}

// SetupToken is the short-lived, shopper-approved intent to vault an
// instrument. Created unapproved, approved client-side, then exchanged.
type SetupToken struct {
	ID       string    `json:"id"`
	Status   string    `json:"status"`
	Customer *Customer `json:"customer,omitempty"`
	Links    []Link    `json:"links,omitempty"`
}

// PaymentToken is the durable, reusable reference to a vaulted instrument.
type PaymentToken struct {
	ID            string          `json:"id"`
	Status        string          `json:"status,omitempty"`
	Customer      *Customer       `json:"customer,omitempty"`
	PaymentSource json.RawMessage `json:"payment_source,omitempty"`
	Links         []Link          `json:"links,omitempty"`
}

type PaymentTokenList struct {
	Customer      *Customer      `json:"customer,omitempty"`
	PaymentTokens []PaymentToken `json:"payment_tokens"`
}

// Order is the checkout order resource. Deeply nested parts are kept raw so
// the relay passes them through to the browser unchanged.
type Order struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	PaymentSource json.RawMessage `json:"payment_source,omitempty"`
	PurchaseUnits json.RawMessage `json:"purchase_units,omitempty"`
	Payer         json.RawMessage `json:"payer,omitempty"`
	Links         []Link          `json:"links,omitempty"`
}

// Purchase is the single purchase unit of an order.
type Purchase struct {
	Amount      string
	Currency    string
	Description string
}

// wire shapes

type experienceContext struct {
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	UserAction string `json:"user_action,omitempty"`
}

type setupTokenSource struct {
	UsageType         string             `json:"usage_type"`
	CustomerType      string             `json:"customer_type"`
	UsagePattern      string             `json:"usage_pattern,omitempty"`
	ExperienceContext *experienceContext `json:"experience_context,omitempty"`
}

type setupTokenPaymentSource struct {
	PayPal setupTokenSource `json:"paypal"`
}

type createSetupTokenRequest struct {
	Customer      *Customer               `json:"customer,omitempty"`
	PaymentSource setupTokenPaymentSource `json:"payment_source"`
}

type tokenReference struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type createPaymentTokenRequest struct {
	PaymentSource struct {
		Token tokenReference `json:"token"`
	} `json:"payment_source"`
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Amount      orderAmount `json:"amount"`
	Description string      `json:"description,omitempty"`
}

type vaultInstruction struct {
	StoreInVault string `json:"store_in_vault"`
	UsageType    string `json:"usage_type"`
	CustomerType string `json:"customer_type"`
}

type paymentSourceAttributes struct {
	Vault    vaultInstruction `json:"vault"`
	Customer *Customer        `json:"customer,omitempty"`
}

type paypalOrderSource struct {
	ExperienceContext *experienceContext       `json:"experience_context,omitempty"`
	Attributes        *paymentSourceAttributes `json:"attributes,omitempty"`
}

type orderPaymentSource struct {
	PayPal *paypalOrderSource `json:"paypal,omitempty"`
	Token  *tokenReference    `json:"token,omitempty"`
}

type createOrderRequest struct {
	Intent        string             `json:"intent"`
	PurchaseUnits []purchaseUnit     `json:"purchase_units"`
	PaymentSource orderPaymentSource `json:"payment_source"`
}
