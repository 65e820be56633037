package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

// ListTopics returns every topic ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	err := db.WithContext(ctx).Order("slug").Find(&out).Error
	return out, translate(err)
}

// GetTopic fetches a topic by slug or returns ErrNotFound.
func GetTopic(ctx context.Context, db *gorm.DB, slug string) (*domain.Topic, error) {
	var t domain.Topic
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// CreateTopic inserts a topic. A taken slug violates topics_pkey.
func CreateTopic(ctx context.Context, db *gorm.DB, slug, description string) (*domain.Topic, error) {
	t := &domain.Topic{Slug: slug, Description: description}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, translate(err)
	}
	return t, nil
}
