package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"banking-backoffice/internal/models"
)

// LedgerStore is append-only: there is no update or delete.
// Every query matches rows where the account is either source or payee.
type LedgerStore interface {
	Insert(ctx context.Context, t *models.Transaction) error
	ByTransactionID(ctx context.Context, token string) (*models.Transaction, error)
	TokenTaken(ctx context.Context, token string) (bool, error)
	Recent(ctx context.Context, accountID uint, limit int) ([]models.Transaction, error)
	// Between returns rows dated in [from, to).
	Between(ctx context.Context, accountID uint, from, to time.Time) ([]models.Transaction, error)
	MortgagePayments(ctx context.Context, accountID uint) ([]models.Transaction, error)
}

type ledgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) LedgerStore {
	return &ledgerStore{db: db}
}

func (s *ledgerStore) Insert(ctx context.Context, t *models.Transaction) error {
	return translate(s.db.WithContext(ctx).Create(t).Error)
}

func (s *ledgerStore) ByTransactionID(ctx context.Context, token string) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.WithContext(ctx).Where("transaction_id = ?", token).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *ledgerStore) TokenTaken(ctx context.Context, token string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("transaction_id = ?", token).Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (s *ledgerStore) Recent(ctx context.Context, accountID uint, limit int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("account_id = ? OR payee_account_id = ?", accountID, accountID).
		Order("id DESC").
		Limit(limit).
		Find(&txs).Error
	return txs, translate(err)
}

func (s *ledgerStore) Between(ctx context.Context, accountID uint, from, to time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("(account_id = ? OR payee_account_id = ?) AND transaction_date >= ? AND transaction_date < ?",
			accountID, accountID, from, to).
		Order("id DESC").
		Find(&txs).Error
	return txs, translate(err)
}

func (s *ledgerStore) MortgagePayments(ctx context.Context, accountID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Joins("JOIN accounts payee ON payee.id = transactions.payee_account_id").
		Where("(transactions.account_id = ? OR transactions.payee_account_id = ?) AND payee.account_type = ?",
			accountID, accountID, models.AccountTypeMortgage).
		Order("transactions.id DESC").
		Find(&txs).Error
	return txs, translate(err)
}
