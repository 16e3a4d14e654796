package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServiceRepository struct {
	db *gorm.DB
}

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	m := ServiceModel{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		Name:           s.Name,
		Description:    s.Description,
		ServiceType:    string(s.ServiceType),
		FieldTemplates: toFieldTemplateModels(s.ID, s.FieldTemplates),
		CreatedAt:      s.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Service{}, fmt.Errorf("insert service: %w", err)
	}
	return s, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	return r.getByID(r.db.WithContext(ctx), id)
}

func (r *ServiceRepository) getByID(db *gorm.DB, id string) (entities.Service, error) {
	var m ServiceModel
	err := db.Preload("FieldTemplates", orderedFieldTemplates).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Service{}, nil
	}
	if err != nil {
		return entities.Service{}, fmt.Errorf("select service: %w", err)
	}
	return toServiceEntity(m), nil
}

func (r *ServiceRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Service, error) {
	var models []ServiceModel
	err := r.db.WithContext(ctx).
		Preload("FieldTemplates", orderedFieldTemplates).
		Where("provider_id = ?", providerID).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	services := make([]entities.Service, 0, len(models))
	for _, m := range models {
		services = append(services, toServiceEntity(m))
	}
	return services, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&FieldTemplateModel{}, "service_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete field templates: %w", err)
		}
		if err := tx.Delete(&DebtorModel{}, "service_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete debtors: %w", err)
		}
		if err := tx.Delete(&ServiceModel{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete service: %w", err)
		}
		return nil
	})
}

func (r *ServiceRepository) ReplaceFieldTemplates(ctx context.Context, id string, fields []entities.FieldTemplate) (entities.Service, error) {
	var out entities.Service
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ServiceModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("count service: %w", err)
		}
		if count == 0 {
			return nil
		}
		if err := tx.Delete(&FieldTemplateModel{}, "service_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete field templates: %w", err)
		}
		if models := toFieldTemplateModels(id, fields); len(models) > 0 {
			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("insert field templates: %w", err)
			}
		}
		s, err := r.getByID(tx, id)
		out = s
		return err
	})
	if err != nil {
		return entities.Service{}, err
	}
	return out, nil
}

// AddDebtors inserts unsettled debtors and leaves existing rows untouched.
func (r *ServiceRepository) AddDebtors(ctx context.Context, serviceID string, identifiers []string) error {
	if len(identifiers) == 0 {
		return nil
	}
	rows := make([]DebtorModel, 0, len(identifiers))
	for _, identifier := range identifiers {
		rows = append(rows, DebtorModel{ServiceID: serviceID, Identifier: identifier})
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("insert debtors: %w", err)
	}
	return nil
}

func (r *ServiceRepository) ListDebtors(ctx context.Context, serviceID string) ([]entities.Debtor, error) {
	var models []DebtorModel
	if err := r.db.WithContext(ctx).Where("service_id = ?", serviceID).Order("identifier").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("select debtors: %w", err)
	}
	debtors := make([]entities.Debtor, 0, len(models))
	for _, m := range models {
		debtors = append(debtors, entities.Debtor{ServiceID: m.ServiceID, Identifier: m.Identifier, Settled: m.Settled})
	}
	return debtors, nil
}
