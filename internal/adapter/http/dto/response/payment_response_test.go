package response

import (
	"encoding/json"
	"testing"
	"time"

	"pagalotodo/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:            "pay-1",
		ServiceID:     "s-1",
		ConsumerID:    "c-1",
		TransactionID: "tx-1",
		Amount:        12.5,
		Status:        entities.PaymentStatusPending,
		CreatedAt:     now,
		PaymentDate:   now,
		Details:       []entities.PaymentDetail{{Name: "Cedula", Value: "123"}},
	}
	resp := FromPayment(p)
	if resp.ID != "pay-1" || resp.TransactionID != "tx-1" || resp.Status != "pending" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.Details) != 1 || resp.Details[0].Name != "Cedula" {
		t.Fatalf("unexpected details %+v", resp.Details)
	}
}

func TestFromPayment_EmptyDetailsSerializeAsArray(t *testing.T) {
	b, err := json.Marshal(FromPayment(entities.Payment{ID: "pay-1"}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := body["details"].([]any); !ok {
		t.Fatalf("expected details array, got %v", body["details"])
	}
}
