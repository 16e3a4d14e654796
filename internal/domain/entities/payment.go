package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the administrative state of a payment.
//
// Every payment starts as pending; an administrator confirms or rejects it.
// Only pending payments are picked up by the accounting close.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirmed, PaymentStatusRejected:
		return true
	}
	return false
}

// PaymentDetail is one free-form key/value pair submitted with a payment.
// Keys are provider-defined and are not statically typed.
type PaymentDetail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Payment is a consumer's payment against a service.
//
// Payments are never physically deleted.
type Payment struct {
	ID            string          `json:"id"`
	ServiceID     string          `json:"service_id"`
	ConsumerID    string          `json:"consumer_id"`
	TransactionID string          `json:"transaction_id"`
	Amount        float64         `json:"amount"`
	Identifier    string          `json:"identifier,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        PaymentStatus   `json:"status"`
	Details       []PaymentDetail `json:"details,omitempty"`
}

// Detail looks up a payment detail by name, ignoring case. When a key is
// repeated the first occurrence wins.
func (p Payment) Detail(name string) (string, bool) {
	for _, d := range p.Details {
		if strings.EqualFold(d.Name, name) {
			return d.Value, true
		}
	}
	return "", false
}
