package banking

import (
	"context"
	"errors"
	"fmt"

	"banking-backoffice/internal/models"
	"banking-backoffice/internal/store"
)

// ownedAccount loads accountID and checks it belongs to userID.
func ownedAccount(ctx context.Context, accounts store.AccountStore, userID, accountID uint) (*models.Account, error) {
	a, err := accounts.ByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("lookup account %d: %w", accountID, err)
	}
	if a.UserID != userID {
		return nil, ErrForbidden
	}
	return a, nil
}

// directory resolves account ids and owner names, caching for one request.
type directory struct {
	stores   store.Stores
	accounts map[uint]*models.Account
	users    map[uint]*models.User
}

func newDirectory(stores store.Stores) *directory {
	return &directory{
		stores:   stores,
		accounts: make(map[uint]*models.Account),
		users:    make(map[uint]*models.User),
	}
}

func (d *directory) account(ctx context.Context, id uint) (*models.Account, error) {
	if a, ok := d.accounts[id]; ok {
		return a, nil
	}
	a, err := d.stores.Accounts.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("lookup account %d: %w", id, err)
	}
	d.accounts[id] = a
	return a, nil
}

func (d *directory) ownerName(ctx context.Context, a *models.Account) (string, error) {
	if u, ok := d.users[a.UserID]; ok {
		return u.DisplayName(), nil
	}
	u, err := d.stores.Users.ByID(ctx, a.UserID)
	if err != nil {
		return "", fmt.Errorf("lookup owner of account %d: %w", a.ID, err)
	}
	d.users[a.UserID] = u
	return u.DisplayName(), nil
}
