package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

var _ interfaces.IProviderRepository = (*ProviderRepository)(nil)

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	m := ProviderModel{ID: p.ID, Name: p.Name, Email: p.Email, CreatedAt: p.CreatedAt.UTC()}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Provider{}, fmt.Errorf("insert provider: %w", err)
	}
	return p, nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	var m ProviderModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Provider{}, nil
	}
	if err != nil {
		return entities.Provider{}, fmt.Errorf("select provider: %w", err)
	}
	return toProviderEntity(m), nil
}

func (r *ProviderRepository) List(ctx context.Context) ([]entities.Provider, error) {
	var models []ProviderModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("select providers: %w", err)
	}
	providers := make([]entities.Provider, 0, len(models))
	for _, m := range models {
		providers = append(providers, toProviderEntity(m))
	}
	return providers, nil
}

func (r *ProviderRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&ProviderModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}

func toProviderEntity(m ProviderModel) entities.Provider {
	return entities.Provider{ID: m.ID, Name: m.Name, Email: m.Email, CreatedAt: m.CreatedAt.UTC()}
}
