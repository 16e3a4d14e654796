package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pagalotodo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidChargePayload            = errors.New("charge payload must be a json object")
)

// MercadoPagoGateway charges payments through the Mercado Pago payments API.
// In mock mode no request leaves the process and every charge is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if g == nil || (!g.mockMode && g.client == nil) {
		log.Printf("[payment][gateway] gateway not configured payment_id=%s", req.PaymentID)
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	body, err := chargeBody(req)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	if g.mockMode {
		return g.mockCharge(req.PaymentID, body)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(raw, &sdkReq); err != nil {
		log.Printf("[payment][gateway] payload does not fit sdk request payment_id=%s err=%v", req.PaymentID, err)
		return interfaces.ChargeResult{}, fmt.Errorf("%w: %v", ErrInvalidChargePayload, err)
	}

	log.Printf("[payment][gateway] charge start payment_id=%s amount=%.2f", req.PaymentID, req.Amount)
	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed payment_id=%s err=%v", req.PaymentID, err)
		return interfaces.ChargeResult{}, err
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Printf("[payment][gateway] charge success payment_id=%s provider_payment_id=%s provider_status=%s", req.PaymentID, id, resp.Status)

	return interfaces.ChargeResult{ProviderPaymentID: id, Status: resp.Status, Raw: out}, nil
}

// chargeBody merges the caller payload with the payment's own amount,
// reference and description. The amount is always overwritten.
func chargeBody(req interfaces.ChargeRequest) (map[string]any, error) {
	body := map[string]any{}
	if len(req.Payload) > 0 {
		if err := json.Unmarshal(req.Payload, &body); err != nil || body == nil {
			return nil, ErrInvalidChargePayload
		}
	}
	body["transaction_amount"] = req.Amount
	if _, ok := body["external_reference"]; !ok {
		body["external_reference"] = req.PaymentID
	}
	if _, ok := body["description"]; !ok && req.Description != "" {
		body["description"] = req.Description
	}
	return body, nil
}

func (g *MercadoPagoGateway) mockCharge(paymentID string, body map[string]any) (interfaces.ChargeResult, error) {
	id := "mock-" + uuid.NewString()
	now := g.now().UTC().Format(time.RFC3339Nano)
	body["id"] = id
	body["status"] = "approved"
	body["status_detail"] = "accredited"
	body["date_created"] = now
	body["date_approved"] = now

	out, err := json.Marshal(body)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] mock charge payment_id=%s provider_payment_id=%s", paymentID, id)
	return interfaces.ChargeResult{ProviderPaymentID: id, Status: "approved", Raw: out}, nil
}
