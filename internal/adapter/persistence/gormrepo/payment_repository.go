package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts the payment and its details. With settleDebtor the matching
// unsettled debtor is flipped in the same transaction.
func (r *PaymentRepository) Create(ctx context.Context, p entities.Payment, settleDebtor bool) (entities.Payment, error) {
	m := toPaymentModel(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if settleDebtor {
			res := tx.Model(&DebtorModel{}).
				Where("service_id = ? AND identifier = ? AND settled = ?", p.ServiceID, p.Identifier, false).
				Update("settled", true)
			if res.Error != nil {
				return fmt.Errorf("settle debtor: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return interfaces.ErrDebtorNotAvailable
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m PaymentModel
	err := r.db.WithContext(ctx).Preload("Details", orderedDetails).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, fmt.Errorf("select payment: %w", err)
	}
	return toPaymentEntity(m), nil
}

func (r *PaymentRepository) ListByServiceID(ctx context.Context, serviceID string, from, to time.Time) ([]entities.Payment, error) {
	q := r.db.WithContext(ctx).Preload("Details", orderedDetails).Where("service_id = ?", serviceID)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from.UTC())
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to.UTC())
	}

	var models []PaymentModel
	if err := q.Order("created_at, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	payments := make([]entities.Payment, 0, len(models))
	for _, m := range models {
		payments = append(payments, toPaymentEntity(m))
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	res := r.db.WithContext(ctx).Model(&PaymentModel{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return entities.Payment{}, fmt.Errorf("update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return r.GetByID(ctx, id)
}
