package banking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"banking-backoffice/internal/models"
	"banking-backoffice/internal/store"
)

type Credentials struct {
	UserName string
	Password string
}

// AuthService checks credentials and opens a session.
type AuthService struct {
	stores   store.Stores
	sessions *SessionIssuer
	logger   *slog.Logger
	cost     int

	dummyOnce sync.Once
	dummy     []byte
}

func NewAuthService(stores store.Stores, sessions *SessionIssuer, logger *slog.Logger) *AuthService {
	return &AuthService{stores: stores, sessions: sessions, logger: logger, cost: bcrypt.DefaultCost}
}

// Login never says which of the two fields was wrong. An unknown user still
// pays for one bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, c Credentials) (*LoginResponse, error) {
	user, err := s.stores.Users.ByUsername(ctx, c.UserName)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash := s.dummyHash()
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(c.Password)) != nil || user == nil {
		s.logger.Info("login rejected")
		return &LoginResponse{Response: failure(MsgLoginFailure)}, nil
	}

	resp := &LoginResponse{Response: success(MsgLoginSuccess)}
	account, err := s.stores.Accounts.ByUserAndType(ctx, user.ID, models.AccountTypeSavings)
	switch {
	case err == nil:
		resp.AccountID = account.ID
		resp.AccountNumber = account.Number
		resp.AccountType = string(account.Type)
		resp.UserName = user.DisplayName()
		resp.PhoneNumber = user.Phone
	case errors.Is(err, store.ErrNotFound):
		// Still a successful login, just without an account summary.
	default:
		return nil, fmt.Errorf("lookup savings account: %w", err)
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return nil, err
	}
	resp.Token = token
	s.logger.Info("login succeeded", "user_id", user.ID)
	return resp, nil
}

func (s *AuthService) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost)
	})
	return s.dummy
}
