package conciliation

import (
	"strconv"
	"time"

	"pagalotodo/internal/domain/entities"
)

// Source is the first segment of a field template reference.
type Source string

const (
	SourcePayment       Source = "payment"
	SourceConsumer      Source = "consumer"
	SourcePaymentDetail Source = "paymentdetail"
)

// Record is one payment row of a report together with its consumer.
type Record struct {
	Payment  entities.Payment
	Consumer entities.Consumer
}

// Property names are lowercase; lookups lowercase the reference first.
var paymentAccessors = map[string]func(entities.Payment) string{
	"id":            func(p entities.Payment) string { return p.ID },
	"serviceid":     func(p entities.Payment) string { return p.ServiceID },
	"consumerid":    func(p entities.Payment) string { return p.ConsumerID },
	"transactionid": func(p entities.Payment) string { return p.TransactionID },
	"amount":        func(p entities.Payment) string { return strconv.FormatFloat(p.Amount, 'f', -1, 64) },
	"identifier":    func(p entities.Payment) string { return p.Identifier },
	"createdat":     func(p entities.Payment) string { return formatInstant(p.CreatedAt) },
	"paymentdate":   func(p entities.Payment) string { return formatInstant(p.PaymentDate) },
	"status":        func(p entities.Payment) string { return string(p.Status) },
	"paymentstatus": func(p entities.Payment) string { return string(p.Status) },
}

var consumerAccessors = map[string]func(entities.Consumer) string{
	"id":         func(c entities.Consumer) string { return c.ID },
	"username":   func(c entities.Consumer) string { return c.Username },
	"email":      func(c entities.Consumer) string { return c.Email },
	"name":       func(c entities.Consumer) string { return c.Name },
	"lastname":   func(c entities.Consumer) string { return c.LastName },
	"consumerid": func(c entities.Consumer) string { return c.ConsumerID },
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
