package usecase

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("Email, amount, and shipping details are required")

type CreatePaymentIntentInput struct {
	Email       string
	AmountCents int64
	Shipping    *ShippingDetails
}

type CreatePaymentIntentOutput struct {
	ClientSecret string
}

type CreatePaymentIntent struct {
	gw PaymentGateway
}

func NewCreatePaymentIntent(gw PaymentGateway) *CreatePaymentIntent {
	return &CreatePaymentIntent{gw: gw}
}

// Execute validates the request and delegates to the gateway, single
// attempt. The amount is whatever the client posted; it is not derived
// from the catalog server-side.
func (uc *CreatePaymentIntent) Execute(ctx context.Context, in CreatePaymentIntentInput) (CreatePaymentIntentOutput, error) {
	if in.Email == "" || in.AmountCents <= 0 || in.Shipping == nil {
		return CreatePaymentIntentOutput{}, ErrMissingFields
	}

	secret, err := uc.gw.CreateIntent(ctx, PaymentIntentInput{
		AmountCents:  in.AmountCents,
		Currency:     "usd",
		ReceiptEmail: in.Email,
		Shipping:     in.Shipping,
	})
	if err != nil {
		return CreatePaymentIntentOutput{}, err
	}
	return CreatePaymentIntentOutput{ClientSecret: secret}, nil
}
