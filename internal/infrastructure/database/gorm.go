package database

import (
	"fmt"
	"log"

	"pagalotodo/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm connects to the relational store selected by STORAGE_DRIVER.
func OpenGorm(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	case config.StorageSQLite:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("storage driver %q is not relational", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StorageDriver, err)
	}
	log.Printf("[storage] connected driver=%s", cfg.StorageDriver)
	return db, nil
}
