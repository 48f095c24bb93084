package banking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"banking-backoffice/internal/config"
	"banking-backoffice/internal/models"
	"banking-backoffice/internal/store"
)

const dobLayout = "2006-01-02"

// Registration is the profile a new customer submits.
type Registration struct {
	FirstName    string
	LastName     string
	Phone        string
	EmailAddress string
	Address1     string
	Address2     string
	DOB          string
	PanNumber    string
	PinCode      string
}

// RegistrationService opens a user together with their default SAVINGS account.
type RegistrationService struct {
	uow     store.UnitOfWork
	tokens  *TokenGenerator
	presets config.Account
	logger  *slog.Logger
	cost    int
}

func NewRegistrationService(uow store.UnitOfWork, tokens *TokenGenerator, presets config.Account, logger *slog.Logger) *RegistrationService {
	return &RegistrationService{
		uow:     uow,
		tokens:  tokens,
		presets: presets,
		logger:  logger,
		cost:    bcrypt.DefaultCost,
	}
}

func (s *RegistrationService) Register(ctx context.Context, req Registration) (*RegisterResponse, error) {
	dob, err := time.Parse(dobLayout, strings.TrimSpace(req.DOB))
	if err != nil {
		return nil, ErrInvalidDate
	}

	var resp *RegisterResponse
	err = s.uow.Do(ctx, func(st store.Stores) error {
		_, err := st.Users.ByPhone(ctx, req.Phone)
		switch {
		case err == nil:
			return ErrDuplicateUser
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("lookup phone: %w", err)
		}

		password, err := s.tokens.Password()
		if err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		number, err := s.tokens.AccountNumber(ctx, st.Accounts.NumberTaken)
		if err != nil {
			return err
		}

		user := &models.User{
			UUID:         uuid.NewString(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Username:     req.Phone,
			PasswordHash: string(hash),
			Phone:        req.Phone,
			Email:        req.EmailAddress,
			Address1:     req.Address1,
			Address2:     req.Address2,
			DOB:          dob,
			PanNumber:    req.PanNumber,
			PinCode:      req.PinCode,
		}
		if err := st.Users.Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrDuplicateUser
			}
			return fmt.Errorf("create user: %w", err)
		}

		account := &models.Account{
			UserID:         user.ID,
			Type:           models.AccountTypeSavings,
			Number:         number,
			MinimumBalance: s.presets.MinimumBalance,
			Balance:        s.presets.OpeningBalance,
		}
		if err := st.Accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		s.logger.Info("user registered", "user_id", user.ID, "account_id", account.ID)
		resp = &RegisterResponse{
			Response: success(MsgRegisterSuccess),
			UserID:   user.Username,
			Password: password,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
