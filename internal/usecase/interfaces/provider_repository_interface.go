package interfaces

import (
	"context"

	"pagalotodo/internal/domain/entities"
)

// IProviderRepository persists providers.
//
// GetByID returns a zero Provider and a nil error when the id is unknown.
type IProviderRepository interface {
	Create(ctx context.Context, p entities.Provider) (entities.Provider, error)
	GetByID(ctx context.Context, id string) (entities.Provider, error)
	List(ctx context.Context) ([]entities.Provider, error)
	Delete(ctx context.Context, id string) error
}
