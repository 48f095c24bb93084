package banking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"banking-backoffice/internal/models"
	"banking-backoffice/internal/store"
)

// memDB is an in-memory stand-in for the three tables. memUoW snapshots it
// before each unit and restores the snapshot on error.
type memDB struct {
	users    []models.User
	accounts []models.Account
	ledger   []models.Transaction

	insertErr error
	locks     [][]uint
}

type memSnapshot struct {
	users    []models.User
	accounts []models.Account
	ledger   []models.Transaction
}

func (m *memDB) snapshot() memSnapshot {
	return memSnapshot{
		users:    append([]models.User(nil), m.users...),
		accounts: append([]models.Account(nil), m.accounts...),
		ledger:   append([]models.Transaction(nil), m.ledger...),
	}
}

func (m *memDB) restore(s memSnapshot) {
	m.users, m.accounts, m.ledger = s.users, s.accounts, s.ledger
}

func (m *memDB) stores() store.Stores {
	return store.Stores{Users: memUsers{m}, Accounts: memAccounts{m}, Ledger: memLedger{m}}
}

func (m *memDB) addUser(first, last, phone string) uint {
	id := uint(len(m.users) + 1)
	m.users = append(m.users, models.User{
		ID:        id,
		UUID:      "uuid-" + phone,
		FirstName: first,
		LastName:  last,
		Username:  phone,
		Phone:     phone,
	})
	return id
}

func (m *memDB) addAccount(userID uint, t models.AccountType, number string, balance, minimum int64) uint {
	id := uint(len(m.accounts) + 1)
	m.accounts = append(m.accounts, models.Account{
		ID:             id,
		UserID:         userID,
		Type:           t,
		Number:         number,
		Balance:        decimal.NewFromInt(balance),
		MinimumBalance: decimal.NewFromInt(minimum),
	})
	return id
}

func (m *memDB) account(id uint) models.Account {
	for _, a := range m.accounts {
		if a.ID == id {
			return a
		}
	}
	return models.Account{}
}

func (m *memDB) addTx(id, from, to uint, amount int64, date time.Time) {
	m.ledger = append(m.ledger, models.Transaction{
		ID:             id,
		TransactionID:  fmt.Sprintf("TXN%08d", id),
		AccountID:      from,
		PayeeAccountID: to,
		Amount:         decimal.NewFromInt(amount),
		Remarks:        "tx",
		Type:           models.TransactionTypeFundTransfer,
		Date:           date,
	})
}

type memUoW struct {
	db        *memDB
	commits   int
	rollbacks int
}

func (u *memUoW) Stores() store.Stores { return u.db.stores() }

func (u *memUoW) Do(_ context.Context, fn func(store.Stores) error) error {
	snap := u.db.snapshot()
	if err := fn(u.db.stores()); err != nil {
		u.db.restore(snap)
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

type memUsers struct{ m *memDB }

func (s memUsers) Create(_ context.Context, u *models.User) error {
	for _, existing := range s.m.users {
		if existing.Phone == u.Phone || existing.Username == u.Username {
			return store.ErrDuplicate
		}
	}
	u.ID = uint(len(s.m.users) + 1)
	s.m.users = append(s.m.users, *u)
	return nil
}

func (s memUsers) find(match func(models.User) bool) (*models.User, error) {
	for _, u := range s.m.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memUsers) ByID(_ context.Context, id uint) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.ID == id })
}

func (s memUsers) ByUsername(_ context.Context, name string) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.Username == name })
}

func (s memUsers) ByPhone(_ context.Context, phone string) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.Phone == phone })
}

type memAccounts struct{ m *memDB }

func (s memAccounts) Create(_ context.Context, a *models.Account) error {
	for _, existing := range s.m.accounts {
		if existing.Number == a.Number {
			return store.ErrDuplicate
		}
	}
	a.ID = uint(len(s.m.accounts) + 1)
	s.m.accounts = append(s.m.accounts, *a)
	return nil
}

func (s memAccounts) find(match func(models.Account) bool) (*models.Account, error) {
	for _, a := range s.m.accounts {
		if match(a) {
			a := a
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memAccounts) ByID(_ context.Context, id uint) (*models.Account, error) {
	return s.find(func(a models.Account) bool { return a.ID == id })
}

func (s memAccounts) ByNumber(_ context.Context, number string) (*models.Account, error) {
	return s.find(func(a models.Account) bool { return a.Number == number })
}

func (s memAccounts) ByUserAndType(_ context.Context, userID uint, t models.AccountType) (*models.Account, error) {
	return s.find(func(a models.Account) bool { return a.UserID == userID && a.Type == t })
}

func (s memAccounts) NumberTaken(_ context.Context, number string) (bool, error) {
	_, err := s.ByNumber(context.Background(), number)
	return err == nil, nil
}

func (s memAccounts) LockForUpdate(_ context.Context, ids ...uint) ([]models.Account, error) {
	s.m.locks = append(s.m.locks, append([]uint(nil), ids...))
	var out []models.Account
	for _, a := range s.m.accounts {
		for _, id := range ids {
			if a.ID == id {
				out = append(out, a)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memAccounts) UpdateBalance(_ context.Context, id uint, balance decimal.Decimal) error {
	for i := range s.m.accounts {
		if s.m.accounts[i].ID == id {
			s.m.accounts[i].Balance = balance
			return nil
		}
	}
	return store.ErrNotFound
}

func (s memAccounts) SearchSavings(_ context.Context, prefix string, excludeUserID uint, limit int) ([]models.Account, error) {
	var out []models.Account
	for _, a := range s.m.accounts {
		if a.Type == models.AccountTypeSavings && strings.HasPrefix(a.Number, prefix) && a.UserID != excludeUserID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memLedger struct{ m *memDB }

func (s memLedger) Insert(_ context.Context, t *models.Transaction) error {
	if s.m.insertErr != nil {
		return s.m.insertErr
	}
	for _, existing := range s.m.ledger {
		if existing.TransactionID == t.TransactionID {
			return store.ErrDuplicate
		}
	}
	t.ID = uint(len(s.m.ledger) + 1)
	s.m.ledger = append(s.m.ledger, *t)
	return nil
}

func (s memLedger) ByTransactionID(_ context.Context, token string) (*models.Transaction, error) {
	for _, t := range s.m.ledger {
		if t.TransactionID == token {
			t := t
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memLedger) TokenTaken(ctx context.Context, token string) (bool, error) {
	_, err := s.ByTransactionID(ctx, token)
	return err == nil, nil
}

func (s memLedger) matching(accountID uint, keep func(models.Transaction) bool) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.m.ledger {
		if (t.AccountID == accountID || t.PayeeAccountID == accountID) && keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s memLedger) Recent(_ context.Context, accountID uint, limit int) ([]models.Transaction, error) {
	out := s.matching(accountID, func(models.Transaction) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s memLedger) Between(_ context.Context, accountID uint, from, to time.Time) ([]models.Transaction, error) {
	return s.matching(accountID, func(t models.Transaction) bool {
		return !t.Date.Before(from) && t.Date.Before(to)
	}), nil
}

func (s memLedger) MortgagePayments(_ context.Context, accountID uint) ([]models.Transaction, error) {
	return s.matching(accountID, func(t models.Transaction) bool {
		return s.m.account(t.PayeeAccountID).Type == models.AccountTypeMortgage
	}), nil
}

type recordingPublisher struct {
	events []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, data any) error {
	p.events = append(p.events, data)
	return p.err
}

const (
	aliceSavings  = "4111000000000001"
	bobSavings    = "4111000000000002"
	aliceMortgage = "5222000000000003"

	alice uint = 1
	bob   uint = 2
)

// seed creates Alice (savings 5000, minimum 500, plus a mortgage account) and
// Bob (savings 1000). Account ids are 1 Alice savings, 2 Bob savings,
// 3 Alice mortgage.
func seed() (*memDB, *memUoW) {
	db := &memDB{}
	db.addUser("Alice", "Smith", "9000000001")
	db.addUser("Bob", "Jones", "9000000002")
	db.addAccount(alice, models.AccountTypeSavings, aliceSavings, 5000, 500)
	db.addAccount(bob, models.AccountTypeSavings, bobSavings, 1000, 500)
	db.addAccount(alice, models.AccountTypeMortgage, aliceMortgage, 250000, 0)
	return db, &memUoW{db: db}
}
