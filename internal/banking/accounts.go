package banking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"banking-backoffice/internal/store"
)

const (
	minPrefixLength = 4
	payeeLimit      = 20
)

type AccountService struct {
	stores store.Stores
	logger *slog.Logger
}

func NewAccountService(stores store.Stores, logger *slog.Logger) *AccountService {
	return &AccountService{stores: stores, logger: logger}
}

func (s *AccountService) Balance(ctx context.Context, userID, accountID uint) (*BalanceResponse, error) {
	a, err := ownedAccount(ctx, s.stores.Accounts, userID, accountID)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{
		Response:       success(MsgBalanceFound),
		AccountID:      a.ID,
		AccountNumber:  a.Number,
		AccountType:    string(a.Type),
		Balance:        a.Balance,
		MinimumBalance: a.MinimumBalance,
	}, nil
}

// SearchPayees lists other users' SAVINGS accounts whose number starts with prefix.
func (s *AccountService) SearchPayees(ctx context.Context, userID uint, prefix string) (*PayeeResponse, error) {
	prefix = strings.TrimSpace(prefix)
	if len(prefix) < minPrefixLength || strings.IndexFunc(prefix, notDigit) >= 0 {
		return nil, ErrInvalidPrefix
	}

	accts, err := s.stores.Accounts.SearchSavings(ctx, prefix, userID, payeeLimit)
	if err != nil {
		return nil, fmt.Errorf("search payees: %w", err)
	}
	if len(accts) == 0 {
		return &PayeeResponse{Response: success(MsgNoRecords), Payees: []Payee{}}, nil
	}

	dir := newDirectory(s.stores)
	payees := make([]Payee, 0, len(accts))
	for i := range accts {
		name, err := dir.ownerName(ctx, &accts[i])
		if err != nil {
			return nil, err
		}
		payees = append(payees, Payee{
			AccountID:     accts[i].ID,
			AccountType:   string(accts[i].Type),
			AccountNumber: accts[i].Number,
			PayeeName:     name,
		})
	}
	return &PayeeResponse{Response: success(MsgRecordsFound), Payees: payees}, nil
}

func notDigit(r rune) bool { return r < '0' || r > '9' }
