package interfaces

import (
	"context"

	"pagalotodo/internal/domain/entities"
)

type IConsumerRepository interface {
	Create(ctx context.Context, c entities.Consumer) (entities.Consumer, error)
	GetByID(ctx context.Context, id string) (entities.Consumer, error)
}
