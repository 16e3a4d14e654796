package entities

import "time"

// AccountingClose records one executed accounting close (cierre contable).
//
// The ledger is append-only; the latest ExecutedAt is the lower bound used
// to select pending payments on the next run.

type AccountingClose struct {
	ID         string    `json:"id"`
	ExecutedAt time.Time `json:"executed_at"`
}
