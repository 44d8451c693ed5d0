package models

// Payer distinguishes a brand-new anonymous shopper from a returning shopper
// with a known processor customer id. The zero value is a new payer.
type Payer struct {
	customerID string
}

func NewPayer() Payer {
	return Payer{}
}

func ReturningPayer(customerID string) Payer {
	return Payer{customerID: customerID}
}

// PayerFromCustomerID maps an optional caller-supplied customer id onto the
// variant: empty means new payer.
func PayerFromCustomerID(customerID string) Payer {
	if customerID == "" {
		return NewPayer()
	}
	return ReturningPayer(customerID)
}

// Returning reports the bound customer id and whether the payer is a
// returning one.
func (p Payer) Returning() (string, bool) {
	return p.customerID, p.customerID != ""
}

// PaymentSelector is the choice between paying with a previously vaulted
// instrument and a fresh PayPal approval flow that vaults on success.
type PaymentSelector interface {
	paymentSelector()
}

// VaultedInstrument pays with an existing payment-method token. The processor
// auto-captures the order on creation, no shopper interaction needed.
type VaultedInstrument struct {
	VaultID string
}

func (VaultedInstrument) paymentSelector() {}

// FreshInstrument pays through the PayPal redirect/approval flow and requests
// vaulting of the instrument on success. A returning payer attaches the known
// customer id so the new instrument lands on the same vault record.
type FreshInstrument struct {
	Payer Payer
}

func (FreshInstrument) paymentSelector() {}
