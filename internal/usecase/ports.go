package usecase

import "context"

// ShippingAddress mirrors the address object posted by the checkout page.
type ShippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ShippingDetails is passed through to the gateway verbatim; this service
// does not interpret it.
type ShippingDetails struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone,omitempty"`
	Address ShippingAddress `json:"address"`
}

type PaymentIntentInput struct {
	AmountCents  int64
	Currency     string
	ReceiptEmail string
	Shipping     *ShippingDetails
}

// PaymentGateway is the port to the payment processor. One network call
// per invocation; the returned token is the client-side secret used by the
// browser to confirm the payment.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, in PaymentIntentInput) (clientSecret string, err error)
}
