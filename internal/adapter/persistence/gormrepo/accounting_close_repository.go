package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AccountingCloseRepository struct {
	db *gorm.DB
}

var _ interfaces.IAccountingCloseRepository = (*AccountingCloseRepository)(nil)

func NewAccountingCloseRepository(db *gorm.DB) *AccountingCloseRepository {
	return &AccountingCloseRepository{db: db}
}

func (r *AccountingCloseRepository) Last(ctx context.Context) (entities.AccountingClose, error) {
	var m AccountingCloseModel
	err := r.db.WithContext(ctx).Order("executed_at DESC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.AccountingClose{}, nil
	}
	if err != nil {
		return entities.AccountingClose{}, fmt.Errorf("select last accounting close: %w", err)
	}
	return entities.AccountingClose{ID: m.ID, ExecutedAt: m.ExecutedAt.UTC()}, nil
}

func (r *AccountingCloseRepository) Append(ctx context.Context, c entities.AccountingClose) (entities.AccountingClose, error) {
	m := AccountingCloseModel{ID: c.ID, ExecutedAt: c.ExecutedAt.UTC()}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.AccountingClose{}, fmt.Errorf("insert accounting close: %w", err)
	}
	return c, nil
}
