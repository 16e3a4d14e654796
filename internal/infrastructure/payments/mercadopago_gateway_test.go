package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pagalotodo/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("  ", false)
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockCharge(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }

	res, err := g.Charge(context.Background(), interfaces.ChargeRequest{
		PaymentID:   "pay-1",
		Amount:      10.5,
		Description: "Agua A-1",
		Payload:     json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.ProviderPaymentID, "mock-") {
		t.Fatalf("expected mock id, got %q", res.ProviderPaymentID)
	}
	if res.Status != "approved" {
		t.Fatalf("expected approved, got %q", res.Status)
	}

	var body map[string]any
	if err := json.Unmarshal(res.Raw, &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if body["transaction_amount"] != 10.5 {
		t.Fatalf("expected amount from the payment, got %v", body["transaction_amount"])
	}
	if body["external_reference"] != "pay-1" || body["description"] != "Agua A-1" {
		t.Fatalf("expected reference and description filled in, got %v", body)
	}
	if body["payment_method_id"] != "pix" {
		t.Fatalf("expected caller fields kept, got %v", body)
	}
	if body["date_created"] != "2024-05-02T10:00:00Z" {
		t.Fatalf("unexpected date_created %v", body["date_created"])
	}
}

func TestChargeBody_KeepsCallerReference(t *testing.T) {
	body, err := chargeBody(interfaces.ChargeRequest{
		PaymentID: "pay-1",
		Amount:    3,
		Payload:   json.RawMessage(`{"external_reference":"ext-9","description":"custom"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["external_reference"] != "ext-9" || body["description"] != "custom" {
		t.Fatalf("caller fields overwritten: %v", body)
	}
}

func TestChargeBody_RejectsNonObject(t *testing.T) {
	for _, payload := range []string{`[1,2]`, `null`, `"x"`} {
		if _, err := chargeBody(interfaces.ChargeRequest{Payload: json.RawMessage(payload)}); !errors.Is(err, ErrInvalidChargePayload) {
			t.Fatalf("payload %s: expected ErrInvalidChargePayload, got %v", payload, err)
		}
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.Charge(context.Background(), interfaces.ChargeRequest{PaymentID: "pay-1"})
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
