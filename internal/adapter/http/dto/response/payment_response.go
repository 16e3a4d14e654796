package response

import (
	"time"

	"pagalotodo/internal/domain/entities"
)

type PaymentDetailResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PaymentResponse struct {
	ID            string                  `json:"id"`
	ServiceID     string                  `json:"service_id"`
	ConsumerID    string                  `json:"consumer_id"`
	TransactionID string                  `json:"transaction_id"`
	Amount        float64                 `json:"amount"`
	Identifier    string                  `json:"identifier,omitempty"`
	Status        string                  `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
	PaymentDate   time.Time               `json:"payment_date"`
	Details       []PaymentDetailResponse `json:"details"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	details := make([]PaymentDetailResponse, 0, len(p.Details))
	for _, d := range p.Details {
		details = append(details, PaymentDetailResponse{Name: d.Name, Value: d.Value})
	}
	return PaymentResponse{
		ID:            p.ID,
		ServiceID:     p.ServiceID,
		ConsumerID:    p.ConsumerID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Identifier:    p.Identifier,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		PaymentDate:   p.PaymentDate,
		Details:       details,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
