package interfaces

import (
	"context"
	"time"

	"pagalotodo/internal/domain/entities"
)

// IPaymentRepository persists payments.
//
// Create with settleDebtor=true inserts the payment and settles the matching
// debtor of the service atomically; it fails with ErrDebtorNotAvailable and
// writes nothing when no unsettled debtor has p.Identifier.
//
// ListByServiceID filters on created_at with inclusive lower and upper
// bounds. A zero bound is open. Results are ordered by
// created_at.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment, settleDebtor bool) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID string, from, to time.Time) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}
