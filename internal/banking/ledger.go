package banking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"banking-backoffice/internal/models"
	"banking-backoffice/internal/store"
)

const recentLimit = 5

// LedgerService serves the read-only ledger reports. Each report matches rows
// where the account is either source or payee.
type LedgerService struct {
	stores store.Stores
	logger *slog.Logger
}

func NewLedgerService(stores store.Stores, logger *slog.Logger) *LedgerService {
	return &LedgerService{stores: stores, logger: logger}
}

func (s *LedgerService) Recent(ctx context.Context, userID, accountID uint) (*LedgerResponse, error) {
	if _, err := ownedAccount(ctx, s.stores.Accounts, userID, accountID); err != nil {
		return nil, err
	}
	txs, err := s.stores.Ledger.Recent(ctx, accountID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	return s.project(ctx, accountID, txs, false)
}

func (s *LedgerService) Monthly(ctx context.Context, userID, accountID uint, month, year int) (*LedgerResponse, error) {
	from, to, err := MonthRange(month, year)
	if err != nil {
		return nil, err
	}
	if _, err := ownedAccount(ctx, s.stores.Accounts, userID, accountID); err != nil {
		return nil, err
	}
	s.logger.Debug("monthly transactions", "account_id", accountID, "from", from, "to", to)
	txs, err := s.stores.Ledger.Between(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly transactions: %w", err)
	}
	return s.project(ctx, accountID, txs, false)
}

// Mortgage always describes the payee side of each row, which is the
// MORTGAGE account, even when accountID is that mortgage account.
func (s *LedgerService) Mortgage(ctx context.Context, userID, accountID uint) (*LedgerResponse, error) {
	if _, err := ownedAccount(ctx, s.stores.Accounts, userID, accountID); err != nil {
		return nil, err
	}
	txs, err := s.stores.Ledger.MortgagePayments(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("mortgage transactions: %w", err)
	}
	return s.project(ctx, accountID, txs, true)
}

// MonthRange returns [first day of month, first day of next month) in UTC.
func MonthRange(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

func (s *LedgerService) project(ctx context.Context, accountID uint, txs []models.Transaction, withBalance bool) (*LedgerResponse, error) {
	if len(txs) == 0 {
		return &LedgerResponse{Response: success(MsgNoRecords), Transactions: []TransactionSummary{}}, nil
	}

	dir := newDirectory(s.stores)
	out := make([]TransactionSummary, 0, len(txs))
	for i := range txs {
		tx := &txs[i]
		otherID := tx.Counterpart(accountID)
		if withBalance {
			otherID = tx.PayeeAccountID
		}
		other, err := dir.account(ctx, otherID)
		if err != nil {
			return nil, err
		}
		name, err := dir.ownerName(ctx, other)
		if err != nil {
			return nil, err
		}
		summary := TransactionSummary{
			PayeeName:         name,
			Remarks:           tx.Remarks,
			AccountNumber:     other.Number,
			TransactionType:   tx.Type,
			TransactionDate:   tx.Date,
			TransactionAmount: tx.Amount,
		}
		if withBalance {
			balance := other.Balance
			summary.Balance = &balance
		}
		out = append(out, summary)
	}
	return &LedgerResponse{Response: success(MsgRecordsFound), Transactions: out}, nil
}
