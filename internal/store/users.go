package store

import (
	"context"

	"gorm.io/gorm"

	"banking-backoffice/internal/models"
)

// UserStore holds credential and profile records.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByID(ctx context.Context, id uint) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
	ByPhone(ctx context.Context, phone string) (*models.User, error)
}

type userStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

func (s *userStore) ByID(ctx context.Context, id uint) (*models.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *userStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.first(ctx, "username = ?", username)
}

func (s *userStore) ByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.first(ctx, "phone = ?", phone)
}

func (s *userStore) first(ctx context.Context, query string, args ...any) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
