package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pagalotodo/internal/adapter/persistence/gormrepo"
	"pagalotodo/internal/adapter/persistence/repository"
	"pagalotodo/internal/config"
	"pagalotodo/internal/infrastructure/database"
	"pagalotodo/internal/infrastructure/email"
	"pagalotodo/internal/infrastructure/lock"
	"pagalotodo/internal/infrastructure/payments"
	"pagalotodo/internal/usecase"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Providers interfaces.IProviderRepository
	Services  interfaces.IServiceRepository
	Consumers interfaces.IConsumerRepository
	Payments  interfaces.IPaymentRepository
	Closes    interfaces.IAccountingCloseRepository
}

// App holds the use cases shared by the HTTP API and the CLI.
type App struct {
	Providers       usecase.IProviderUseCase
	Services        usecase.IServiceUseCase
	Consumers       usecase.IConsumerUseCase
	Payments        usecase.IPaymentUseCase
	AccountingClose usecase.IAccountingCloseUseCase

	closers []func() error
}

// Close releases database and Redis connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	repos, err := app.buildRepositories(ctx, cfg)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	closeLock, err := app.buildLock(ctx, cfg)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.Providers = usecase.NewProviderUseCase(repos.Providers, repos.Services)
	app.Services = usecase.NewServiceUseCase(repos.Services, repos.Providers, repos.Payments)
	app.Consumers = usecase.NewConsumerUseCase(repos.Consumers)
	app.Payments = usecase.NewPaymentUseCase(repos.Payments, repos.Services, repos.Consumers, buildGateway(cfg))
	app.AccountingClose = usecase.NewAccountingCloseUseCase(
		repos.Closes,
		repos.Providers,
		repos.Services,
		repos.Payments,
		repos.Consumers,
		buildSender(cfg),
		closeLock,
		usecase.WithSendRetryDelay(cfg.CloseRetryDelay),
	)
	return app, nil
}

func (a *App) buildRepositories(ctx context.Context, cfg config.Config) (Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Printf("[storage] using dynamodb region=%s", cfg.AWSRegion)
		return Repositories{
			Providers: repository.NewProviderDynamoRepository(ddb, cfg.ProvidersTable),
			Services:  repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable, cfg.DebtorsTable),
			Consumers: repository.NewConsumerDynamoRepository(ddb, cfg.ConsumersTable),
			Payments:  repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable, cfg.DebtorsTable),
			Closes:    repository.NewAccountingCloseDynamoRepository(ddb, cfg.AccountingCloseTable),
		}, nil

	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenGorm(cfg)
		if err != nil {
			return Repositories{}, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		if err := gormrepo.AutoMigrate(db); err != nil {
			return Repositories{}, fmt.Errorf("migrate: %w", err)
		}
		return Repositories{
			Providers: gormrepo.NewProviderRepository(db),
			Services:  gormrepo.NewServiceRepository(db),
			Consumers: gormrepo.NewConsumerRepository(db),
			Payments:  gormrepo.NewPaymentRepository(db),
			Closes:    gormrepo.NewAccountingCloseRepository(db),
		}, nil
	}
	return Repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func (a *App) buildLock(ctx context.Context, cfg config.Config) (interfaces.ICloseLock, error) {
	if cfg.RedisAddr == "" {
		log.Printf("[lock] REDIS_ADDR not set, using in-process close lock")
		return lock.NewLocalLock(), nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	a.closers = append(a.closers, rdb.Close)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}
	return lock.NewRedisLock(rdb, lock.DefaultCloseLockKey, cfg.CloseLockTTL), nil
}

func buildSender(cfg config.Config) interfaces.IConciliationSender {
	if cfg.MailMock {
		log.Printf("[mail][sender] mock mode enabled")
		return email.NewMockSender()
	}
	if cfg.SendGridAPIKey == "" || cfg.SendGridSenderEmail == "" {
		log.Printf("[mail][sender] SENDGRID_API_KEY or SENDGRID_SENDER_EMAIL missing, deliveries will be rejected")
	}
	return email.NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridSenderEmail, cfg.SendGridSenderName)
}

// buildGateway returns nil when Mercado Pago is not configured; payments
// without a gateway payload still work.
func buildGateway(cfg config.Config) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("[payment][gateway] Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gw
}
