package bootstrap

import (
	"context"
	"testing"
	"time"

	"pagalotodo/internal/config"
	"pagalotodo/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) config.Config {
	return config.Config{
		ServerPort:    8080,
		StorageDriver: config.StorageSQLite,
		DatabaseDSN:   "file:" + t.Name() + "?mode=memory&cache=shared",
		MailMock:      true,
		CloseLockTTL:  time.Minute,
	}
}

func TestBuild_SQLiteEndToEnd(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.PaymentGatewayMock = true

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()
	provider, err := app.Providers.Create(ctx, "UTE", "cobros@ute.uy")
	require.NoError(t, err)
	service, err := app.Services.Create(ctx, entities.Service{ProviderID: provider.ID, Name: "Luz"})
	require.NoError(t, err)
	consumer, err := app.Consumers.Create(ctx, entities.Consumer{Username: "ana", Email: "ana@x.uy"})
	require.NoError(t, err)

	_, err = app.Payments.Submit(ctx, entities.Payment{ServiceID: service.ID, ConsumerID: consumer.ID, Amount: 10}, nil)
	require.NoError(t, err)

	summary, err := app.AccountingClose.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Providers)
	assert.Zero(t, summary.Errors)

	last, err := app.AccountingClose.Last(ctx)
	require.NoError(t, err)
	assert.False(t, last.ExecutedAt.IsZero())
}

func TestBuild_RedisLock(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := sqliteConfig(t)
	cfg.RedisAddr = mr.Addr()

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	_, err = app.AccountingClose.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, mr.Exists("pagalotodo:accounting-close:lock"))
}

func TestBuild_UnreachableRedis(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildGateway_Unconfigured(t *testing.T) {
	assert.Nil(t, buildGateway(config.Config{}))
	assert.NotNil(t, buildGateway(config.Config{PaymentGatewayMock: true}))
}
