package banking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"banking-backoffice/internal/events"
	"banking-backoffice/internal/models"
	"banking-backoffice/internal/store"
)

// EventPublisher receives transfer.completed after commit.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

type TransferRequest struct {
	UserID             uint
	AccountID          uint
	PayeeAccountNumber string
	Amount             decimal.Decimal
	Remarks            string
}

type TransferService struct {
	uow       store.UnitOfWork
	tokens    *TokenGenerator
	publisher EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewTransferService builds the service; publisher may be nil.
func NewTransferService(uow store.UnitOfWork, tokens *TokenGenerator, publisher EventPublisher, logger *slog.Logger) *TransferService {
	return &TransferService{
		uow:       uow,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Transfer moves Amount from the caller's account to the payee. Both rows are
// locked in id order, re-read, checked against the source's minimum balance,
// then debited, recorded and credited in one transaction. An insufficient
// balance is a FAILURE envelope, not an error.
func (s *TransferService) Transfer(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}

	var (
		resp  *TransferResponse
		event *events.TransferCompletedEvent
	)
	err := s.uow.Do(ctx, func(st store.Stores) error {
		payee, err := st.Accounts.ByNumber(ctx, req.PayeeAccountNumber)
		if err != nil {
			return notFound(err, "payee account")
		}
		source, err := ownedAccount(ctx, st.Accounts, req.UserID, req.AccountID)
		if err != nil {
			return err
		}
		if source.ID == payee.ID {
			return ErrSameAccount
		}

		first, second := source.ID, payee.ID
		if first > second {
			first, second = second, first
		}
		locked, err := st.Accounts.LockForUpdate(ctx, first, second)
		if err != nil {
			return fmt.Errorf("lock accounts: %w", err)
		}
		src, dst := pick(locked, source.ID), pick(locked, payee.ID)
		if src == nil || dst == nil {
			return ErrAccountNotFound
		}

		required := req.Amount.Add(src.MinimumBalance)
		if required.GreaterThan(src.Balance) {
			s.logger.Info("transfer rejected: insufficient balance",
				"account_id", src.ID, "balance", src.Balance.String(), "required", required.String())
			resp = &TransferResponse{Response: failure(MsgInsufficientBalance)}
			return nil
		}

		token, err := s.tokens.TransactionID(ctx, st.Ledger.TokenTaken)
		if err != nil {
			return err
		}

		txType := models.TransactionTypeFundTransfer
		if dst.Type == models.AccountTypeMortgage {
			txType = models.TransactionTypeMortgagePayment
		}
		row := &models.Transaction{
			TransactionID:  token,
			AccountID:      src.ID,
			PayeeAccountID: dst.ID,
			Amount:         req.Amount,
			Remarks:        req.Remarks,
			Type:           txType,
			Date:           s.now().UTC(),
		}

		if err := st.Accounts.UpdateBalance(ctx, src.ID, src.Balance.Sub(req.Amount)); err != nil {
			return fmt.Errorf("debit account %d: %w", src.ID, err)
		}
		if err := st.Ledger.Insert(ctx, row); err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}
		if err := st.Accounts.UpdateBalance(ctx, dst.ID, dst.Balance.Add(req.Amount)); err != nil {
			return fmt.Errorf("credit account %d: %w", dst.ID, err)
		}

		resp = &TransferResponse{Response: success(MsgTransferSuccess), TransactionID: token}
		event = &events.TransferCompletedEvent{
			TransactionID:      token,
			SourceAccountID:    src.ID,
			PayeeAccountID:     dst.ID,
			PayeeAccountNumber: dst.Number,
			Amount:             req.Amount.String(),
			TransactionType:    txType,
			Date:               row.Date,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		s.logger.Info("transfer committed", "transaction_id", event.TransactionID,
			"account_id", event.SourceAccountID, "payee_account_id", event.PayeeAccountID, "amount", event.Amount)
		s.publish(ctx, event)
	}
	return resp, nil
}

func (s *TransferService) publish(ctx context.Context, e *events.TransferCompletedEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.TransferCompleted, e); err != nil {
		s.logger.Warn("publish transfer event failed", "transaction_id", e.TransactionID, "error", err)
	}
}

// maxAmount is the largest value a numeric(18,2) column holds.
var maxAmount = decimal.RequireFromString("9999999999999999.99")

// checkAmount accepts positive amounts with at most two decimal places that
// fit the balance columns; anything finer would be rounded by the database.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) || amount.GreaterThan(maxAmount) {
		return ErrInvalidAmount
	}
	return nil
}

func pick(accts []models.Account, id uint) *models.Account {
	for i := range accts {
		if accts[i].ID == id {
			return &accts[i]
		}
	}
	return nil
}

func notFound(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, what)
	}
	return fmt.Errorf("lookup %s: %w", what, err)
}
