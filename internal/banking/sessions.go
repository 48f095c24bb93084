package banking

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"banking-backoffice/internal/config"
	"banking-backoffice/internal/models"
)

// Claims identify the session owner: Subject is the user's public UUID and
// UserID its row id.
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// SessionIssuer signs and verifies HS256 session tokens.
type SessionIssuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewSessionIssuer(cfg config.JWT) *SessionIssuer {
	return &SessionIssuer{secret: []byte(cfg.Secret), expiry: cfg.Expiry, now: time.Now}
}

func (i *SessionIssuer) Issue(u *models.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UUID,
			ID:        strconv.FormatUint(uint64(u.ID), 10) + "-" + strconv.FormatInt(now.UnixNano(), 36),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (i *SessionIssuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing uid", ErrInvalidSession)
	}
	return claims, nil
}
