// Package repo implements the data persistence layer for the news domain,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (weak ETags) in the HTTP layer.
//
// Topics and users are insert-only, so their row count changes exactly when
// their listing does and serves as the collection version.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

// CountTopics returns the number of topics.
func CountTopics(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Topic{}).Count(&n).Error
	return n, translate(err)
}

// CountUsers returns the number of users.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, translate(err)
}
