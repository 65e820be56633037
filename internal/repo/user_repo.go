package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	err := db.WithContext(ctx).Order("username").Find(&out).Error
	return out, translate(err)
}

// GetUser fetches a user by username or returns ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// CreateUser inserts a user. A taken username violates users_pkey.
func CreateUser(ctx context.Context, db *gorm.DB, username, name string, avatarURL *string) (*domain.User, error) {
	u := &domain.User{Username: username, Name: name, AvatarURL: avatarURL}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, translate(err)
	}
	return u, nil
}
