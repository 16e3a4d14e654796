package gormrepo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

var base = time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

func seedService(t *testing.T, repo *ServiceRepository, id string, kind entities.ServiceType) entities.Service {
	t.Helper()
	s, err := repo.Create(context.Background(), entities.Service{
		ID:             id,
		ProviderID:     "p-1",
		Name:           "Agua",
		ServiceType:    kind,
		FieldTemplates: []entities.FieldTemplate{entities.DefaultFieldTemplate()},
		CreatedAt:      base,
	})
	require.NoError(t, err)
	return s
}

func TestProviderRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewProviderRepository(db)
	ctx := context.Background()

	missing, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = repo.Create(ctx, entities.Provider{ID: "p-1", Name: "UTE", Email: "a@ute.uy", CreatedAt: base})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Provider{ID: "p-2", Name: "OSE", Email: "b@ose.uy", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "UTE", got.Name)
	assert.True(t, got.CreatedAt.Equal(base))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p-1", all[0].ID)

	require.NoError(t, repo.Delete(ctx, "p-1"))
	got, err = repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestServiceRepository_FieldTemplates(t *testing.T) {
	db := openTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()
	seedService(t, repo, "s-1", entities.ServiceTypeDirecto)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, got.FieldTemplates, 1)
	assert.Equal(t, entities.DefaultFieldTemplate(), got.FieldTemplates[0])

	width := 10
	fields := []entities.FieldTemplate{
		{Name: "Monto", AttrReference: "payment.amount", Format: "F2"},
		{Name: "Fecha", AttrReference: "payment.createdat", Format: "dd/MM/yyyy"},
		{Name: "Cedula", AttrReference: "paymentdetail.cedula", Length: &width},
	}
	updated, err := repo.ReplaceFieldTemplates(ctx, "s-1", fields)
	require.NoError(t, err)
	assert.Equal(t, fields, updated.FieldTemplates)

	unknown, err := repo.ReplaceFieldTemplates(ctx, "s-9", fields)
	require.NoError(t, err)
	assert.Empty(t, unknown.ID)

	byProvider, err := repo.ListByProviderID(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, byProvider, 1)
	assert.Len(t, byProvider[0].FieldTemplates, 3)
}

func TestServiceRepository_Debtors(t *testing.T) {
	db := openTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()
	seedService(t, repo, "s-1", entities.ServiceTypePorConfirmacion)

	require.NoError(t, repo.AddDebtors(ctx, "s-1", []string{"B", "A"}))
	require.NoError(t, db.Model(&DebtorModel{}).Where("identifier = ?", "A").Update("settled", true).Error)
	require.NoError(t, repo.AddDebtors(ctx, "s-1", []string{"A", "C"}))

	debtors, err := repo.ListDebtors(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []entities.Debtor{
		{ServiceID: "s-1", Identifier: "A", Settled: true},
		{ServiceID: "s-1", Identifier: "B"},
		{ServiceID: "s-1", Identifier: "C"},
	}, debtors)

	require.NoError(t, repo.Delete(ctx, "s-1"))
	debtors, err = repo.ListDebtors(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, debtors)
}

func newPayment(id string, createdAt time.Time) entities.Payment {
	return entities.Payment{
		ID:            id,
		ServiceID:     "s-1",
		ConsumerID:    "c-1",
		TransactionID: "tx-" + id,
		Amount:        1250.5,
		Identifier:    "A",
		CreatedAt:     createdAt,
		Status:        entities.PaymentStatusPending,
		Details:       []entities.PaymentDetail{{Name: "Mes", Value: "03"}, {Name: "Cedula", Value: "1234"}},
	}
}

func TestPaymentRepository_SettlesDebtorAtomically(t *testing.T) {
	db := openTestDB(t)
	services := NewServiceRepository(db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()
	seedService(t, services, "s-1", entities.ServiceTypePorConfirmacion)
	require.NoError(t, services.AddDebtors(ctx, "s-1", []string{"A"}))

	_, err := repo.Create(ctx, newPayment("pay-1", base), true)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newPayment("pay-2", base), true)
	assert.ErrorIs(t, err, interfaces.ErrDebtorNotAvailable)

	second, err := repo.GetByID(ctx, "pay-2")
	require.NoError(t, err)
	assert.Empty(t, second.ID)

	debtors, err := services.ListDebtors(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, debtors, 1)
	assert.True(t, debtors[0].Settled)
}

func TestPaymentRepository_ListAndUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	for i, id := range []string{"pay-1", "pay-2", "pay-3"} {
		_, err := repo.Create(ctx, newPayment(id, base.Add(time.Duration(i)*time.Hour)), false)
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, 1250.5, got.Amount)
	assert.Equal(t, []entities.PaymentDetail{{Name: "Mes", Value: "03"}, {Name: "Cedula", Value: "1234"}}, got.Details)
	assert.True(t, got.PaymentDate.IsZero())

	all, err := repo.ListByServiceID(ctx, "s-1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	window, err := repo.ListByServiceID(ctx, "s-1", base.Add(time.Hour), base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "pay-2", window[0].ID)
	assert.Equal(t, "pay-3", window[1].ID)

	window, err = repo.ListByServiceID(ctx, "s-1", time.Time{}, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "pay-2", window[1].ID)

	updated, err := repo.UpdateStatus(ctx, "pay-2", entities.PaymentStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusConfirmed, updated.Status)

	missing, err := repo.UpdateStatus(ctx, "pay-9", entities.PaymentStatusConfirmed)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestAccountingCloseRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccountingCloseRepository(db)
	ctx := context.Background()

	last, err := repo.Last(ctx)
	require.NoError(t, err)
	assert.True(t, last.ExecutedAt.IsZero())

	_, err = repo.Append(ctx, entities.AccountingClose{ID: "cl-1", ExecutedAt: base})
	require.NoError(t, err)
	_, err = repo.Append(ctx, entities.AccountingClose{ID: "cl-2", ExecutedAt: base.Add(24 * time.Hour)})
	require.NoError(t, err)

	last, err = repo.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cl-2", last.ID)
	assert.True(t, last.ExecutedAt.Equal(base.Add(24*time.Hour)))
}

func TestConsumerRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewConsumerRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Consumer{ID: "c-1", Username: "ana", Email: "ana@x.uy", ConsumerID: "4123", CreatedAt: base})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "4123", got.ConsumerID)

	missing, err := repo.GetByID(ctx, "c-9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
