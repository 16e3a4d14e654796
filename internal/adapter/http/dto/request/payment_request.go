package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"pagalotodo/internal/domain/entities"
)

var ErrInvalidDateParam = errors.New("invalid date parameter")

type PaymentDetailRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentRequest submits a payment. GatewayPayload, when present, is a
// Mercado Pago payment request (payment_method_id, payer, token...).
type PaymentRequest struct {
	ServiceID      string                 `json:"service_id" binding:"required"`
	ConsumerID     string                 `json:"consumer_id" binding:"required"`
	Amount         float64                `json:"amount" binding:"required"`
	Identifier     string                 `json:"identifier"`
	PaymentDate    *time.Time             `json:"payment_date"`
	Details        []PaymentDetailRequest `json:"details"`
	GatewayPayload json.RawMessage        `json:"gateway_payload" swaggertype:"object"`
}

func (r PaymentRequest) ToEntity() entities.Payment {
	p := entities.Payment{
		ServiceID:  r.ServiceID,
		ConsumerID: r.ConsumerID,
		Amount:     r.Amount,
		Identifier: r.Identifier,
	}
	if r.PaymentDate != nil {
		p.PaymentDate = r.PaymentDate.UTC()
	}
	for _, d := range r.Details {
		p.Details = append(p.Details, entities.PaymentDetail{Name: d.Name, Value: d.Value})
	}
	return p
}

// Payload returns the gateway payload, or nil when it was omitted or null.
func (r PaymentRequest) Payload() json.RawMessage {
	trimmed := strings.TrimSpace(string(r.GatewayPayload))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return r.GatewayPayload
}

type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r PaymentStatusRequest) ToStatus() entities.PaymentStatus {
	return entities.PaymentStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// ParseDateRange reads optional RFC3339 from/to query values. Empty values
// give zero (open) bounds.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if v := strings.TrimSpace(from); v != "" {
		if start, err = time.Parse(time.RFC3339, v); err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateParam
		}
	}
	if v := strings.TrimSpace(to); v != "" {
		if end, err = time.Parse(time.RFC3339, v); err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateParam
		}
	}
	return start.UTC(), end.UTC(), nil
}
