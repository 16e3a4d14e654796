package interfaces

import (
	"context"

	"pagalotodo/internal/domain/entities"
)

// IServiceRepository persists services, their ordered field templates and
// the debtor roster of por_confirmacion services.
//
// GetByID and ReplaceFieldTemplates return a zero Service and a nil error
// when the id is unknown. AddDebtors keeps existing entries untouched, so a
// settled debtor is never reset.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
	ReplaceFieldTemplates(ctx context.Context, id string, fields []entities.FieldTemplate) (entities.Service, error)
	AddDebtors(ctx context.Context, serviceID string, identifiers []string) error
	ListDebtors(ctx context.Context, serviceID string) ([]entities.Debtor, error)
}
