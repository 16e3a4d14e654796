package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"
)

var (
	ErrProviderNotFound     = errors.New("provider not found")
	ErrInvalidProviderID    = errors.New("invalid provider id")
	ErrInvalidProviderName  = errors.New("invalid provider name")
	ErrInvalidProviderEmail = errors.New("invalid provider email")
	ErrProviderHasServices  = errors.New("provider still has services")
)

// IProviderUseCase manages the companies that publish services and receive
// conciliation reports.

type IProviderUseCase interface {
	Create(ctx context.Context, name, email string) (entities.Provider, error)
	GetByID(ctx context.Context, id string) (entities.Provider, error)
	List(ctx context.Context) ([]entities.Provider, error)
	Delete(ctx context.Context, id string) error
	ListServices(ctx context.Context, id string) ([]entities.Service, error)
}

type ProviderUseCase struct {
	repo        interfaces.IProviderRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IProviderUseCase = (*ProviderUseCase)(nil)

func NewProviderUseCase(repo interfaces.IProviderRepository, serviceRepo interfaces.IServiceRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo, serviceRepo: serviceRepo}
}

func (u *ProviderUseCase) Create(ctx context.Context, name, email string) (entities.Provider, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return entities.Provider{}, ErrInvalidProviderName
	}
	if _, err := mail.ParseAddress(email); err != nil || strings.Contains(email, "<") {
		return entities.Provider{}, ErrInvalidProviderEmail
	}

	p := entities.Provider{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[provider][usecase] create failed name=%q err=%v", name, err)
		return entities.Provider{}, err
	}
	log.Printf("[provider][usecase] created provider_id=%s", created.ID)
	return created, nil
}

func (u *ProviderUseCase) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Provider{}, ErrInvalidProviderID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Provider{}, err
	}
	if p.ID == "" {
		return entities.Provider{}, ErrProviderNotFound
	}
	return p, nil
}

func (u *ProviderUseCase) List(ctx context.Context) ([]entities.Provider, error) {
	return u.repo.List(ctx)
}

// Delete refuses to remove a provider that still owns services.
func (u *ProviderUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	services, err := u.serviceRepo.ListByProviderID(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(services) > 0 {
		log.Printf("[provider][usecase] delete refused provider_id=%s services=%d", p.ID, len(services))
		return ErrProviderHasServices
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	log.Printf("[provider][usecase] deleted provider_id=%s", p.ID)
	return nil
}

func (u *ProviderUseCase) ListServices(ctx context.Context, id string) ([]entities.Service, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.serviceRepo.ListByProviderID(ctx, p.ID)
}
