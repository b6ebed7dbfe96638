package stripe

import (
	"context"
	"errors"
	"time"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/usecase"
)

// Gateway implements usecase.PaymentGateway on top of the Stripe SDK.
// The secret key is injected here; it never lives in package-level state.
type Gateway struct {
	sc      *client.API
	timeout time.Duration
}

func NewGateway(secretKey string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Gateway{sc: sc, timeout: timeout}
}

func (g *Gateway) CreateIntent(ctx context.Context, in usecase.PaymentIntentInput) (string, error) {
	// ensure per-call timeout if caller didn't set one
	if _, ok := ctx.Deadline(); !ok && g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	params := &stripego.PaymentIntentParams{
		Params:       stripego.Params{Context: ctx},
		Amount:       stripego.Int64(in.AmountCents),
		Currency:     stripego.String(in.Currency),
		ReceiptEmail: stripego.String(in.ReceiptEmail),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	if s := in.Shipping; s != nil {
		params.Shipping = &stripego.ShippingDetailsParams{
			Name:  stripego.String(s.Name),
			Phone: stripego.String(s.Phone),
			Address: &stripego.AddressParams{
				Line1:      stripego.String(s.Address.Line1),
				Line2:      stripego.String(s.Address.Line2),
				City:       stripego.String(s.Address.City),
				State:      stripego.String(s.Address.State),
				PostalCode: stripego.String(s.Address.PostalCode),
				Country:    stripego.String(s.Address.Country),
			},
		}
	}

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return "", errors.New(failureMessage(err))
	}
	return pi.ClientSecret, nil
}

// failureMessage unwraps Stripe API errors to the human-readable message
// the processor returned; anything else (network, timeout) is passed
// through as-is.
func failureMessage(err error) string {
	var sErr *stripego.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return sErr.Msg
	}
	return err.Error()
}

var _ usecase.PaymentGateway = (*Gateway)(nil)
