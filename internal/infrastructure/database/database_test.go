package database

import (
	"context"
	"testing"

	"pagalotodo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenGorm_SQLite(t *testing.T) {
	db, err := OpenGorm(config.Config{StorageDriver: config.StorageSQLite, DatabaseDSN: "file::memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	_ = sqlDB.Close()
}

func TestOpenGorm_RejectsKeyValueDriver(t *testing.T) {
	_, err := OpenGorm(config.Config{StorageDriver: config.StorageDynamoDB})
	assert.Error(t, err)
}

func TestNewDynamoDBConfig(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	cfg, err := NewDynamoDBConfig(context.Background(), config.Config{AWSRegion: "sa-east-1", DynamoDBEndpoint: "http://localhost:8000"})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
