package response

import (
	"time"

	"pagalotodo/internal/domain/entities"
)

type AccountingCloseResponse struct {
	ID         string    `json:"id"`
	ExecutedAt time.Time `json:"executed_at"`
}

func FromAccountingClose(c entities.AccountingClose) AccountingCloseResponse {
	return AccountingCloseResponse{ID: c.ID, ExecutedAt: c.ExecutedAt}
}
