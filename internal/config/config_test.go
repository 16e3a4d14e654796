package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.Equal(t, "payments", cfg.PaymentsTable)
	assert.Equal(t, 10*time.Minute, cfg.CloseLockTTL)
	assert.Zero(t, cfg.CloseRetryDelay)
	assert.False(t, cfg.MailMock)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("MAIL_MOCK", "true")
	t.Setenv("CLOSE_RETRY_DELAY", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseDSN)
	assert.True(t, cfg.MailMock)
	assert.Equal(t, 2*time.Second, cfg.CloseRetryDelay)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagalotodo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("SENDGRID_SENDER_EMAIL: cierres@pagalotodo.uy\nPAYMENTS_TABLE: pagos\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PAYMENTS_TABLE", "pagos_env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cierres@pagalotodo.uy", cfg.SendGridSenderEmail)
	assert.Equal(t, "pagos_env", cfg.PaymentsTable)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{ServerPort: 8080, StorageDriver: StorageDynamoDB, CloseLockTTL: time.Minute}
	assert.NoError(t, base.Validate())

	relational := base
	relational.StorageDriver = StoragePostgres
	assert.Error(t, relational.Validate())

	unknown := base
	unknown.StorageDriver = "mongo"
	assert.Error(t, unknown.Validate())

	badTTL := base
	badTTL.CloseLockTTL = 0
	assert.Error(t, badTTL.Validate())
}
