package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ConsumerRepository struct {
	db *gorm.DB
}

var _ interfaces.IConsumerRepository = (*ConsumerRepository)(nil)

func NewConsumerRepository(db *gorm.DB) *ConsumerRepository {
	return &ConsumerRepository{db: db}
}

func (r *ConsumerRepository) Create(ctx context.Context, c entities.Consumer) (entities.Consumer, error) {
	m := ConsumerModel{
		ID:         c.ID,
		Username:   c.Username,
		Email:      c.Email,
		Name:       c.Name,
		LastName:   c.LastName,
		ConsumerID: c.ConsumerID,
		CreatedAt:  c.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Consumer{}, fmt.Errorf("insert consumer: %w", err)
	}
	return c, nil
}

func (r *ConsumerRepository) GetByID(ctx context.Context, id string) (entities.Consumer, error) {
	var m ConsumerModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Consumer{}, nil
	}
	if err != nil {
		return entities.Consumer{}, fmt.Errorf("select consumer: %w", err)
	}
	return entities.Consumer{
		ID:         m.ID,
		Username:   m.Username,
		Email:      m.Email,
		Name:       m.Name,
		LastName:   m.LastName,
		ConsumerID: m.ConsumerID,
		CreatedAt:  m.CreatedAt.UTC(),
	}, nil
}
