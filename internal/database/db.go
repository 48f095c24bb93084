package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"banking-backoffice/internal/config"
	"banking-backoffice/internal/models"
)

// Connect opens the postgres pool. TranslateError is on so unique violations
// surface as gorm.ErrDuplicatedKey. Single-statement writes skip gorm's implicit
// transaction; multi-step writes go through store.UnitOfWork.
func Connect(cfg config.Database, logger *slog.Logger) (*gorm.DB, error) {
	logger.Info("connecting to postgres", "host", cfg.Host, "port", cfg.Port, "db", cfg.Name)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	logger.Info("connected to postgres")
	return db, nil
}

// Migrate creates or updates the users, accounts and transactions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Account{}, &models.Transaction{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
