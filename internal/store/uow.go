package store

import (
	"context"

	"gorm.io/gorm"
)

// Stores groups the three stores bound to one DB session.
type Stores struct {
	Users    UserStore
	Accounts AccountStore
	Ledger   LedgerStore
}

func NewStores(db *gorm.DB) Stores {
	return Stores{
		Users:    NewUserStore(db),
		Accounts: NewAccountStore(db),
		Ledger:   NewLedgerStore(db),
	}
}

// UnitOfWork runs fn against stores sharing one transaction: commit when fn
// returns nil, roll back otherwise. Stores() gives non-transactional access
// for plain reads.
type UnitOfWork interface {
	Stores() Stores
	Do(ctx context.Context, fn func(Stores) error) error
}

type GormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Stores() Stores {
	return NewStores(u.db)
}

func (u *GormUnitOfWork) Do(ctx context.Context, fn func(Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStores(tx))
	})
}
