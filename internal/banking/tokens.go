package banking

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	passwordLength      = 6
	accountNumberLength = 16
	transactionDigits   = 8
	transactionPrefix   = "TXN"

	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	digits       = "0123456789"
)

// TakenFunc reports whether a candidate token is already in use.
type TakenFunc func(ctx context.Context, candidate string) (bool, error)

// TokenGenerator draws passwords, account numbers and transaction ids from
// crypto/rand. Unique draws give up after maxAttempts collisions.
type TokenGenerator struct {
	rand        io.Reader
	maxAttempts int
}

func NewTokenGenerator(maxAttempts int) *TokenGenerator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &TokenGenerator{rand: rand.Reader, maxAttempts: maxAttempts}
}

// Password returns a 6-character alphanumeric credential.
func (g *TokenGenerator) Password() (string, error) {
	return g.draw(alphanumeric, passwordLength)
}

// AccountNumber returns an unused 16-digit number whose first digit is not zero.
func (g *TokenGenerator) AccountNumber(ctx context.Context, taken TakenFunc) (string, error) {
	return g.unique(ctx, taken, func() (string, error) {
		first, err := g.draw(digits[1:], 1)
		if err != nil {
			return "", err
		}
		rest, err := g.draw(digits, accountNumberLength-1)
		if err != nil {
			return "", err
		}
		return first + rest, nil
	})
}

// TransactionID returns an unused "TXN" + 8 digit ledger token.
func (g *TokenGenerator) TransactionID(ctx context.Context, taken TakenFunc) (string, error) {
	return g.unique(ctx, taken, func() (string, error) {
		n, err := g.draw(digits, transactionDigits)
		if err != nil {
			return "", err
		}
		return transactionPrefix + n, nil
	})
}

func (g *TokenGenerator) unique(ctx context.Context, taken TakenFunc, next func() (string, error)) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		candidate, err := next()
		if err != nil {
			return "", err
		}
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check token: %w", err)
		}
		if !used {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrTokenExhausted, g.maxAttempts)
}

func (g *TokenGenerator) draw(alphabet string, n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	size := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(g.rand, size)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}
