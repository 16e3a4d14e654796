package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound          = errors.New("service not found")
	ErrInvalidServiceID         = errors.New("invalid service id")
	ErrInvalidServiceName       = errors.New("invalid service name")
	ErrInvalidServiceType       = errors.New("invalid service type")
	ErrInvalidFieldTemplate     = errors.New("invalid field template")
	ErrServiceHasPayments       = errors.New("service has payments")
	ErrServiceNotConfirmable    = errors.New("service does not use a debtor roster")
	ErrInvalidDebtorIdentifiers = errors.New("invalid debtor identifiers")
)

// IServiceUseCase manages billable services, their report field templates and
// the debtor roster of por_confirmacion services.

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	ReplaceFieldTemplates(ctx context.Context, id string, fields []entities.FieldTemplate) (entities.Service, error)
	GetFieldTemplates(ctx context.Context, id string) ([]entities.FieldTemplate, error)
	AddDebtors(ctx context.Context, id string, identifiers []string) ([]entities.Debtor, error)
	ListDebtors(ctx context.Context, id string) ([]entities.Debtor, error)
}

type ServiceUseCase struct {
	repo         interfaces.IServiceRepository
	providerRepo interfaces.IProviderRepository
	paymentRepo  interfaces.IPaymentRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, providerRepo interfaces.IProviderRepository, paymentRepo interfaces.IPaymentRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, providerRepo: providerRepo, paymentRepo: paymentRepo}
}

// Create stores a new service seeded with the default "Id Pago" column.
func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.ProviderID = strings.TrimSpace(s.ProviderID)
	if s.Name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	if s.ProviderID == "" {
		return entities.Service{}, ErrInvalidProviderID
	}
	if s.ServiceType == "" {
		s.ServiceType = entities.ServiceTypeDirecto
	}
	if !s.ServiceType.Valid() {
		return entities.Service{}, ErrInvalidServiceType
	}

	provider, err := u.providerRepo.GetByID(ctx, s.ProviderID)
	if err != nil {
		return entities.Service{}, err
	}
	if provider.ID == "" {
		return entities.Service{}, ErrProviderNotFound
	}

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	s.FieldTemplates = []entities.FieldTemplate{entities.DefaultFieldTemplate()}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[service][usecase] create failed provider_id=%s err=%v", s.ProviderID, err)
		return entities.Service{}, err
	}
	log.Printf("[service][usecase] created service_id=%s provider_id=%s type=%s", created.ID, created.ProviderID, created.ServiceType)
	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// Delete refuses services that already received payments.
func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	payments, err := u.paymentRepo.ListByServiceID(ctx, s.ID, time.Time{}, time.Time{})
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ErrServiceHasPayments
	}
	if err := u.repo.Delete(ctx, s.ID); err != nil {
		return err
	}
	log.Printf("[service][usecase] deleted service_id=%s", s.ID)
	return nil
}

// ReplaceFieldTemplates validates the whole template against the report
// accessors before anything is written. A reference that cannot be resolved
// comes back as a *conciliation.ConfigurationError.
func (u *ServiceUseCase) ReplaceFieldTemplates(ctx context.Context, id string, fields []entities.FieldTemplate) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	cleaned := make([]entities.FieldTemplate, 0, len(fields))
	for _, f := range fields {
		f.Name = strings.TrimSpace(f.Name)
		f.AttrReference = strings.TrimSpace(f.AttrReference)
		f.Format = strings.TrimSpace(f.Format)
		if f.Name == "" || f.AttrReference == "" {
			return entities.Service{}, ErrInvalidFieldTemplate
		}
		if f.Length != nil && *f.Length < 0 {
			return entities.Service{}, ErrInvalidFieldTemplate
		}
		cleaned = append(cleaned, f)
	}
	if _, err := conciliation.Compile(cleaned); err != nil {
		log.Printf("[service][usecase] field template rejected service_id=%s err=%v", id, err)
		return entities.Service{}, err
	}

	updated, err := u.repo.ReplaceFieldTemplates(ctx, id, cleaned)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	log.Printf("[service][usecase] field templates replaced service_id=%s fields=%d", id, len(cleaned))
	return updated, nil
}

func (u *ServiceUseCase) GetFieldTemplates(ctx context.Context, id string) ([]entities.FieldTemplate, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.FieldTemplates, nil
}

// AddDebtors registers unsettled debtors. Blank and repeated identifiers are
// dropped; identifiers already on the roster keep their settled flag.
func (u *ServiceUseCase) AddDebtors(ctx context.Context, id string, identifiers []string) ([]entities.Debtor, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.RequiresConfirmation() {
		return nil, ErrServiceNotConfirmable
	}

	seen := make(map[string]struct{}, len(identifiers))
	unique := make([]string, 0, len(identifiers))
	for _, raw := range identifiers {
		ident := entities.NormalizeIdentifier(raw)
		if ident == "" {
			continue
		}
		if _, dup := seen[ident]; dup {
			continue
		}
		seen[ident] = struct{}{}
		unique = append(unique, ident)
	}
	if len(unique) == 0 {
		return nil, ErrInvalidDebtorIdentifiers
	}

	if err := u.repo.AddDebtors(ctx, s.ID, unique); err != nil {
		log.Printf("[service][usecase] add debtors failed service_id=%s err=%v", s.ID, err)
		return nil, err
	}
	log.Printf("[service][usecase] debtors registered service_id=%s count=%d", s.ID, len(unique))
	return u.repo.ListDebtors(ctx, s.ID)
}

func (u *ServiceUseCase) ListDebtors(ctx context.Context, id string) ([]entities.Debtor, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.repo.ListDebtors(ctx, s.ID)
}
