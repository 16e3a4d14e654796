package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeRequest is one charge for a submitted payment. Payload carries the
// provider specific fields (payment method, payer, token); the amount and
// reference always come from the payment itself.
type ChargeRequest struct {
	PaymentID   string
	Amount      float64
	Description string
	Payload     json.RawMessage
}

type ChargeResult struct {
	ProviderPaymentID string
	Status            string
	Raw               json.RawMessage
}

// IPaymentGateway charges a payment through an external provider (Mercado Pago).
//
// The provider payment id becomes the payment's transaction id.
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
