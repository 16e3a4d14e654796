package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"
)

var (
	ErrAccountingCloseNotFound = errors.New("no accounting close recorded")
	ErrCloseInProgress         = interfaces.ErrCloseInProgress
)

// IAccountingCloseUseCase runs the accounting close (cierre contable).
//
// Execute gathers every pending payment created since the last close,
// renders one balance sheet per service, emails each provider its sheets and
// appends a new close to the ledger. Delivery failures are counted in the
// summary and never stop the ledger append.

type IAccountingCloseUseCase interface {
	Execute(ctx context.Context) (conciliation.Summary, error)
	Last(ctx context.Context) (entities.AccountingClose, error)
}

type AccountingCloseUseCase struct {
	closeRepo    interfaces.IAccountingCloseRepository
	providerRepo interfaces.IProviderRepository
	serviceRepo  interfaces.IServiceRepository
	paymentRepo  interfaces.IPaymentRepository
	consumerRepo interfaces.IConsumerRepository
	sender       interfaces.IConciliationSender
	lock         interfaces.ICloseLock
	retryDelay   time.Duration
	now          func() time.Time
}

var _ IAccountingCloseUseCase = (*AccountingCloseUseCase)(nil)

type AccountingCloseOption func(*AccountingCloseUseCase)

// WithSendRetryDelay sets the pause between failed email attempts.
func WithSendRetryDelay(d time.Duration) AccountingCloseOption {
	return func(u *AccountingCloseUseCase) { u.retryDelay = d }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) AccountingCloseOption {
	return func(u *AccountingCloseUseCase) { u.now = now }
}

func NewAccountingCloseUseCase(
	closeRepo interfaces.IAccountingCloseRepository,
	providerRepo interfaces.IProviderRepository,
	serviceRepo interfaces.IServiceRepository,
	paymentRepo interfaces.IPaymentRepository,
	consumerRepo interfaces.IConsumerRepository,
	sender interfaces.IConciliationSender,
	lock interfaces.ICloseLock,
	opts ...AccountingCloseOption,
) *AccountingCloseUseCase {
	u := &AccountingCloseUseCase{
		closeRepo:    closeRepo,
		providerRepo: providerRepo,
		serviceRepo:  serviceRepo,
		paymentRepo:  paymentRepo,
		consumerRepo: consumerRepo,
		sender:       sender,
		lock:         lock,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *AccountingCloseUseCase) Execute(ctx context.Context) (conciliation.Summary, error) {
	token, err := u.lock.Acquire(ctx)
	if err != nil {
		log.Printf("[close][usecase] lock not acquired err=%v", err)
		return conciliation.Summary{}, err
	}
	defer func() {
		if err := u.lock.Release(context.WithoutCancel(ctx), token); err != nil {
			log.Printf("[close][usecase] lock release failed err=%v", err)
		}
	}()

	last, err := u.closeRepo.Last(ctx)
	if err != nil {
		return conciliation.Summary{}, fmt.Errorf("load last accounting close: %w", err)
	}
	since := last.ExecutedAt
	cutoff := u.now().UTC()
	log.Printf("[close][usecase] start since=%s cutoff=%s", since.Format(time.RFC3339Nano), cutoff.Format(time.RFC3339Nano))

	batches, err := u.collect(ctx, since, cutoff)
	if err != nil {
		return conciliation.Summary{}, err
	}

	pipeline := conciliation.NewPipeline(
		conciliation.NewBuilder(u.now),
		u.sender,
		conciliation.WithRetryDelay(u.retryDelay),
	)
	summary, err := pipeline.Run(ctx, batches)
	if err != nil {
		log.Printf("[close][usecase] report generation failed err=%v", err)
		return conciliation.Summary{}, err
	}

	// The next run starts after cutoff, so payments created while this
	// one was sending are picked up there.
	record := entities.AccountingClose{ID: uuid.NewString(), ExecutedAt: cutoff}
	if _, err := u.closeRepo.Append(ctx, record); err != nil {
		log.Printf("[close][usecase] ledger append failed err=%v", err)
		return conciliation.Summary{}, fmt.Errorf("append accounting close: %w", err)
	}
	log.Printf("[close][usecase] done close_id=%s files=%d providers=%d errors=%d", record.ID, summary.Files, summary.Providers, summary.Errors)
	return summary, nil
}

// collect walks providers, their services and the pending payments of each
// service created in (since, cutoff]. A zero since has no lower bound.
func (u *AccountingCloseUseCase) collect(ctx context.Context, since, cutoff time.Time) ([]conciliation.ProviderBatch, error) {
	providers, err := u.providerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	consumers := map[string]entities.Consumer{}
	batches := make([]conciliation.ProviderBatch, 0, len(providers))
	for _, provider := range providers {
		services, err := u.serviceRepo.ListByProviderID(ctx, provider.ID)
		if err != nil {
			return nil, fmt.Errorf("list services of provider %s: %w", provider.ID, err)
		}
		batch := conciliation.ProviderBatch{Provider: provider}
		for _, service := range services {
			payments, err := u.paymentRepo.ListByServiceID(ctx, service.ID, since, cutoff)
			if err != nil {
				return nil, fmt.Errorf("list payments of service %s: %w", service.ID, err)
			}
			var records []conciliation.Record
			for _, p := range payments {
				if p.Status != entities.PaymentStatusPending {
					continue
				}
				if !since.IsZero() && !p.CreatedAt.After(since) {
					continue
				}
				consumer, err := u.consumer(ctx, consumers, p.ConsumerID)
				if err != nil {
					return nil, err
				}
				records = append(records, conciliation.Record{Payment: p, Consumer: consumer})
			}
			batch.Services = append(batch.Services, conciliation.ServiceBatch{Service: service, Records: records})
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

func (u *AccountingCloseUseCase) consumer(ctx context.Context, cache map[string]entities.Consumer, id string) (entities.Consumer, error) {
	if c, ok := cache[id]; ok {
		return c, nil
	}
	c, err := u.consumerRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Consumer{}, fmt.Errorf("load consumer %s: %w", id, err)
	}
	if c.ID == "" {
		log.Printf("[close][usecase] consumer missing consumer_id=%s; consumer columns will be empty", id)
		c.ID = id
	}
	cache[id] = c
	return c, nil
}

func (u *AccountingCloseUseCase) Last(ctx context.Context) (entities.AccountingClose, error) {
	last, err := u.closeRepo.Last(ctx)
	if err != nil {
		return entities.AccountingClose{}, err
	}
	if last.ID == "" {
		return entities.AccountingClose{}, ErrAccountingCloseNotFound
	}
	return last, nil
}
