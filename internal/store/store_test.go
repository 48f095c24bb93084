package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	userColumns    = []string{"id", "uuid", "first_name", "last_name", "username", "password_hash", "phone"}
	accountColumns = []string{"id", "user_id", "account_type", "account_number", "minimum_balance", "balance", "created_at"}
	ledgerColumns  = []string{"id", "transaction_id", "account_id", "payee_account_id", "amount", "remarks", "transaction_type", "transaction_date"}
)

// newMockDB opens gorm over sqlmock with the same options database.Connect uses.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

var fixedTime = time.Date(2024, 2, 14, 10, 30, 0, 0, time.UTC)
