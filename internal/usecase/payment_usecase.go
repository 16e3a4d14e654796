package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentAmount           = errors.New("invalid payment amount")
	ErrInvalidPaymentIdentifier       = errors.New("invalid payment identifier")
	ErrInvalidPaymentDetail           = errors.New("invalid payment detail")
	ErrInvalidPaymentStatus           = errors.New("invalid payment status")
	ErrInvalidDateRange               = errors.New("invalid date range")
	ErrDebtorNotAvailable             = interfaces.ErrDebtorNotAvailable
	ErrInvalidGatewayPayload          = errors.New("invalid payment gateway payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase handles payment submission and administrative status changes.
//
// A payment against a por_confirmacion service settles the matching debtor in
// the same write. When a gateway payload is supplied the payment is charged
// through Mercado Pago first and the provider payment id becomes the
// transaction id.

type IPaymentUseCase interface {
	Submit(ctx context.Context, p entities.Payment, gatewayPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID string, from, to time.Time) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	serviceRepo  interfaces.IServiceRepository
	consumerRepo interfaces.IConsumerRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, serviceRepo interfaces.IServiceRepository, consumerRepo interfaces.IConsumerRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, serviceRepo: serviceRepo, consumerRepo: consumerRepo, gateway: gateway}
}

func (u *PaymentUseCase) Submit(ctx context.Context, p entities.Payment, gatewayPayload json.RawMessage) (entities.Payment, error) {
	p.ServiceID = strings.TrimSpace(p.ServiceID)
	p.ConsumerID = strings.TrimSpace(p.ConsumerID)
	p.Identifier = entities.NormalizeIdentifier(p.Identifier)
	log.Printf("[payment][usecase] submit start service_id=%s consumer_id=%s amount=%.2f", p.ServiceID, p.ConsumerID, p.Amount)

	if p.ServiceID == "" {
		return entities.Payment{}, ErrInvalidServiceID
	}
	if p.ConsumerID == "" {
		return entities.Payment{}, ErrInvalidConsumerID
	}
	if p.Amount <= 0 || math.IsInf(p.Amount, 0) || math.IsNaN(p.Amount) {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	for i := range p.Details {
		p.Details[i].Name = strings.TrimSpace(p.Details[i].Name)
		if p.Details[i].Name == "" {
			return entities.Payment{}, ErrInvalidPaymentDetail
		}
	}

	service, err := u.serviceRepo.GetByID(ctx, p.ServiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if service.ID == "" {
		return entities.Payment{}, ErrServiceNotFound
	}
	consumer, err := u.consumerRepo.GetByID(ctx, p.ConsumerID)
	if err != nil {
		return entities.Payment{}, err
	}
	if consumer.ID == "" {
		return entities.Payment{}, ErrConsumerNotFound
	}

	settle := service.RequiresConfirmation()
	if settle {
		if p.Identifier == "" {
			return entities.Payment{}, ErrInvalidPaymentIdentifier
		}
		if err := u.ensureDebtorAvailable(ctx, service.ID, p.Identifier); err != nil {
			return entities.Payment{}, err
		}
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.TransactionID = uuid.NewString()
	p.CreatedAt = now
	if p.PaymentDate.IsZero() {
		p.PaymentDate = now
	}
	p.PaymentDate = p.PaymentDate.UTC()
	p.Status = entities.PaymentStatusPending

	if len(gatewayPayload) > 0 {
		txID, err := u.charge(ctx, p, service, gatewayPayload)
		if err != nil {
			return entities.Payment{}, err
		}
		p.TransactionID = txID
	}

	created, err := u.repo.Create(ctx, p, settle)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] submit success payment_id=%s transaction_id=%s settled=%t", created.ID, created.TransactionID, settle)
	return created, nil
}

// ensureDebtorAvailable fails early, before any gateway charge. The
// repository re-checks the debtor atomically on insert.
func (u *PaymentUseCase) ensureDebtorAvailable(ctx context.Context, serviceID, identifier string) error {
	debtors, err := u.serviceRepo.ListDebtors(ctx, serviceID)
	if err != nil {
		return err
	}
	for _, d := range debtors {
		if d.Identifier == identifier && !d.Settled {
			return nil
		}
	}
	log.Printf("[payment][usecase] no unsettled debtor service_id=%s identifier=%s", serviceID, identifier)
	return ErrDebtorNotAvailable
}

func (u *PaymentUseCase) charge(ctx context.Context, p entities.Payment, service entities.Service, payload json.RawMessage) (string, error) {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured payment_id=%s", p.ID)
		return "", ErrPaymentGatewayNotConfigured
	}

	if !json.Valid(payload) || !strings.HasPrefix(strings.TrimSpace(string(payload)), "{") {
		log.Printf("[payment][usecase] gateway payload invalid payment_id=%s", p.ID)
		return "", ErrInvalidGatewayPayload
	}

	description := service.Name
	if p.Identifier != "" {
		description = fmt.Sprintf("%s %s", service.Name, p.Identifier)
	}
	res, err := u.gateway.Charge(ctx, interfaces.ChargeRequest{
		PaymentID:   p.ID,
		Amount:      p.Amount,
		Description: description,
		Payload:     payload,
	})
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed payment_id=%s err=%v", p.ID, err)
		switch {
		case isGatewayCustomerNotFound(err):
			return "", ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return "", ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return "", ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", ErrPaymentGatewayBadRequest
		}
		return "", err
	}
	log.Printf("[payment][usecase] payment gateway success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, res.ProviderPaymentID, res.Status)
	return res.ProviderPaymentID, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByServiceID(ctx context.Context, serviceID string, from, to time.Time) ([]entities.Payment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	service, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ID == "" {
		return nil, ErrServiceNotFound
	}
	return u.repo.ListByServiceID(ctx, serviceID, from, to)
}

func (u *PaymentUseCase) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if !status.Valid() {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] status updated payment_id=%s status=%s", id, status)
	return updated, nil
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
