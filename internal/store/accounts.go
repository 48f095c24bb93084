package store

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"banking-backoffice/internal/models"
)

// AccountStore holds balance-bearing accounts.
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	ByID(ctx context.Context, id uint) (*models.Account, error)
	ByNumber(ctx context.Context, number string) (*models.Account, error)
	ByUserAndType(ctx context.Context, userID uint, t models.AccountType) (*models.Account, error)
	NumberTaken(ctx context.Context, number string) (bool, error)
	// LockForUpdate reads the given rows with FOR UPDATE, in ascending id order.
	// It only serializes anything when called inside a unit of work.
	LockForUpdate(ctx context.Context, ids ...uint) ([]models.Account, error)
	UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error
	SearchSavings(ctx context.Context, prefix string, excludeUserID uint, limit int) ([]models.Account, error)
}

type accountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) AccountStore {
	return &accountStore{db: db}
}

func (s *accountStore) Create(ctx context.Context, a *models.Account) error {
	return translate(s.db.WithContext(ctx).Create(a).Error)
}

func (s *accountStore) ByID(ctx context.Context, id uint) (*models.Account, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *accountStore) ByNumber(ctx context.Context, number string) (*models.Account, error) {
	return s.first(ctx, "account_number = ?", number)
}

func (s *accountStore) ByUserAndType(ctx context.Context, userID uint, t models.AccountType) (*models.Account, error) {
	return s.first(ctx, "user_id = ? AND account_type = ?", userID, t)
}

func (s *accountStore) NumberTaken(ctx context.Context, number string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Account{}).Where("account_number = ?", number).Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (s *accountStore) LockForUpdate(ctx context.Context, ids ...uint) ([]models.Account, error) {
	var accts []models.Account
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&accts).Error
	if err != nil {
		return nil, translate(err)
	}
	return accts, nil
}

func (s *accountStore) UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	res := s.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Update("balance", balance)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *accountStore) SearchSavings(ctx context.Context, prefix string, excludeUserID uint, limit int) ([]models.Account, error) {
	var accts []models.Account
	err := s.db.WithContext(ctx).
		Where("account_type = ? AND account_number LIKE ? AND user_id <> ?", models.AccountTypeSavings, prefix+"%", excludeUserID).
		Order("account_number").
		Limit(limit).
		Find(&accts).Error
	if err != nil {
		return nil, translate(err)
	}
	return accts, nil
}

func (s *accountStore) first(ctx context.Context, query string, args ...any) (*models.Account, error) {
	var a models.Account
	if err := s.db.WithContext(ctx).Where(query, args...).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}
