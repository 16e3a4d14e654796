package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	ServerPort int

	StorageDriver string
	DatabaseDSN   string

	AWSRegion            string
	DynamoDBEndpoint     string
	ProvidersTable       string
	ServicesTable        string
	DebtorsTable         string
	ConsumersTable       string
	PaymentsTable        string
	AccountingCloseTable string

	SendGridAPIKey      string
	SendGridSenderEmail string
	SendGridSenderName  string
	MailMock            bool

	RedisAddr       string
	RedisPassword   string
	CloseLockTTL    time.Duration
	CloseRetryDelay time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("PROVIDERS_TABLE", "providers")
	v.SetDefault("SERVICES_TABLE", "services")
	v.SetDefault("DEBTORS_TABLE", "debtors")
	v.SetDefault("CONSUMERS_TABLE", "consumers")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("ACCOUNTING_CLOSE_TABLE", "accounting_closes")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("SENDGRID_SENDER_EMAIL", "")
	v.SetDefault("SENDGRID_SENDER_NAME", "PagaloTodo")
	v.SetDefault("MAIL_MOCK", false)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CLOSE_LOCK_TTL", "10m")
	v.SetDefault("CLOSE_RETRY_DELAY", "0s")
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
}

// Load reads configuration from the environment. When CONFIG_FILE is set the
// file is read first and environment variables still take precedence.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := strings.TrimSpace(v.GetString("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		ServerPort:             v.GetInt("SERVER_PORT"),
		StorageDriver:          strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DatabaseDSN:            v.GetString("DATABASE_DSN"),
		AWSRegion:              v.GetString("AWS_REGION"),
		DynamoDBEndpoint:       v.GetString("DYNAMODB_ENDPOINT"),
		ProvidersTable:         v.GetString("PROVIDERS_TABLE"),
		ServicesTable:          v.GetString("SERVICES_TABLE"),
		DebtorsTable:           v.GetString("DEBTORS_TABLE"),
		ConsumersTable:         v.GetString("CONSUMERS_TABLE"),
		PaymentsTable:          v.GetString("PAYMENTS_TABLE"),
		AccountingCloseTable:   v.GetString("ACCOUNTING_CLOSE_TABLE"),
		SendGridAPIKey:         v.GetString("SENDGRID_API_KEY"),
		SendGridSenderEmail:    v.GetString("SENDGRID_SENDER_EMAIL"),
		SendGridSenderName:     v.GetString("SENDGRID_SENDER_NAME"),
		MailMock:               v.GetBool("MAIL_MOCK"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		CloseLockTTL:           v.GetDuration("CLOSE_LOCK_TTL"),
		CloseRetryDelay:        v.GetDuration("CLOSE_RETRY_DELAY"),
		MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     v.GetBool("PAYMENT_GATEWAY_MOCK"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres, StorageSQLite:
		if strings.TrimSpace(c.DatabaseDSN) == "" {
			return fmt.Errorf("DATABASE_DSN is required for storage driver %s", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid server port %d", c.ServerPort)
	}
	if c.CloseLockTTL <= 0 {
		return fmt.Errorf("CLOSE_LOCK_TTL must be positive")
	}
	if c.CloseRetryDelay < 0 {
		return fmt.Errorf("CLOSE_RETRY_DELAY must not be negative")
	}
	return nil
}
