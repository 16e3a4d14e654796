package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
	mock_interfaces "pagalotodo/internal/usecase/interfaces/mocks"
)

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, nil)
		if _, err := uc.Create(context.Background(), entities.Service{ProviderID: "p-1"}); !errors.Is(err, ErrInvalidServiceName) {
			t.Fatalf("expected ErrInvalidServiceName, got %v", err)
		}
		if _, err := uc.Create(context.Background(), entities.Service{Name: "Agua"}); !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
		if _, err := uc.Create(context.Background(), entities.Service{Name: "Agua", ProviderID: "p-1", ServiceType: "otro"}); !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("provider not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		providerRepo := mock_interfaces.NewMockIProviderRepository(ctrl)
		uc := NewServiceUseCase(nil, providerRepo, nil)

		providerRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Provider{}, nil)
		if _, err := uc.Create(context.Background(), entities.Service{Name: "Agua", ProviderID: "p-1"}); !errors.Is(err, ErrProviderNotFound) {
			t.Fatalf("expected ErrProviderNotFound, got %v", err)
		}
	})

	t.Run("seeds default field template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		providerRepo := mock_interfaces.NewMockIProviderRepository(ctrl)
		uc := NewServiceUseCase(repo, providerRepo, nil)

		providerRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Provider{ID: "p-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) {
			return s, nil
		})

		s, err := uc.Create(context.Background(), entities.Service{Name: "Agua", ProviderID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if s.ServiceType != entities.ServiceTypeDirecto {
			t.Fatalf("expected default type directo, got %s", s.ServiceType)
		}
		if len(s.FieldTemplates) != 1 || s.FieldTemplates[0].AttrReference != "payment.id" || *s.FieldTemplates[0].Length != 36 {
			t.Fatalf("expected seeded Id Pago field, got %+v", s.FieldTemplates)
		}
	})
}

func TestServiceUseCase_ReplaceFieldTemplates(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, nil)
		_, err := uc.ReplaceFieldTemplates(context.Background(), "s-1", []entities.FieldTemplate{{Name: " ", AttrReference: "payment.id"}})
		if !errors.Is(err, ErrInvalidFieldTemplate) {
			t.Fatalf("expected ErrInvalidFieldTemplate, got %v", err)
		}
	})

	t.Run("unknown reference is rejected before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		_, err := uc.ReplaceFieldTemplates(context.Background(), "s-1", []entities.FieldTemplate{{Name: "Total", AttrReference: "payment.total"}})
		if !errors.Is(err, conciliation.ErrConfiguration) {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().ReplaceFieldTemplates(gomock.Any(), "s-1", gomock.Any()).Return(entities.Service{}, nil)
		_, err := uc.ReplaceFieldTemplates(context.Background(), "s-1", []entities.FieldTemplate{{Name: "Cedula", AttrReference: "paymentdetail.cedula"}})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().ReplaceFieldTemplates(gomock.Any(), "s-1", []entities.FieldTemplate{
			{Name: "Monto", AttrReference: "payment.amount", Format: "N2"},
		}).Return(entities.Service{ID: "s-1"}, nil)

		_, err := uc.ReplaceFieldTemplates(context.Background(), "s-1", []entities.FieldTemplate{
			{Name: " Monto ", AttrReference: " payment.amount", Format: "N2 "},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestServiceUseCase_AddDebtors(t *testing.T) {
	t.Run("directo services have no roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", ServiceType: entities.ServiceTypeDirecto}, nil)
		if _, err := uc.AddDebtors(context.Background(), "s-1", []string{"A"}); !errors.Is(err, ErrServiceNotConfirmable) {
			t.Fatalf("expected ErrServiceNotConfirmable, got %v", err)
		}
	})

	t.Run("blank and duplicate identifiers are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", ServiceType: entities.ServiceTypePorConfirmacion}, nil)
		repo.EXPECT().AddDebtors(gomock.Any(), "s-1", []string{"A-1", "B-2"}).Return(nil)
		repo.EXPECT().ListDebtors(gomock.Any(), "s-1").Return([]entities.Debtor{
			{ServiceID: "s-1", Identifier: "A-1"},
			{ServiceID: "s-1", Identifier: "B-2"},
		}, nil)

		debtors, err := uc.AddDebtors(context.Background(), "s-1", []string{" A-1 ", "", "B-2", "A-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(debtors) != 2 {
			t.Fatalf("expected 2 debtors, got %d", len(debtors))
		}
	})

	t.Run("only blanks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", ServiceType: entities.ServiceTypePorConfirmacion}, nil)
		if _, err := uc.AddDebtors(context.Background(), "s-1", []string{" ", ""}); !errors.Is(err, ErrInvalidDebtorIdentifiers) {
			t.Fatalf("expected ErrInvalidDebtorIdentifiers, got %v", err)
		}
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewServiceUseCase(repo, nil, paymentRepo)

	repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil).Times(2)
	paymentRepo.EXPECT().ListByServiceID(gomock.Any(), "s-1", time.Time{}, time.Time{}).Return([]entities.Payment{{ID: "pay-1"}}, nil)
	if err := uc.Delete(context.Background(), "s-1"); !errors.Is(err, ErrServiceHasPayments) {
		t.Fatalf("expected ErrServiceHasPayments, got %v", err)
	}

	paymentRepo.EXPECT().ListByServiceID(gomock.Any(), "s-1", time.Time{}, time.Time{}).Return(nil, nil)
	repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)
	if err := uc.Delete(context.Background(), "s-1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
