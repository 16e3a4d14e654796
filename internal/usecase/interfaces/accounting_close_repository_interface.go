package interfaces

import (
	"context"

	"pagalotodo/internal/domain/entities"
)

// IAccountingCloseRepository is the append-only close ledger.
//
// Last returns a zero AccountingClose and a nil error when no close ran yet.
type IAccountingCloseRepository interface {
	Last(ctx context.Context) (entities.AccountingClose, error)
	Append(ctx context.Context, c entities.AccountingClose) (entities.AccountingClose, error)
}
