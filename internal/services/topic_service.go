// Package services – TopicService
//
// Topics are created once and listed; slugs are stored trimmed and lower
// case so "Cats" and "cats" collide on topics_pkey.
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

// TopicRepo defines the repository contract required by TopicService.
type TopicRepo interface {
	ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, db *gorm.DB, slug, description string) (*domain.Topic, error)
	CountTopics(ctx context.Context, db *gorm.DB) (int64, error)
}

// TopicService provides topic operations.
type TopicService struct {
	DB   *gorm.DB
	Repo TopicRepo

	// SlugLocale drives slug case folding. Und is locale-neutral.
	SlugLocale language.Tag
}

// NewTopicService constructs a TopicService with locale-neutral slugs.
func NewTopicService(db *gorm.DB, r TopicRepo) *TopicService {
	return &TopicService{DB: db, Repo: r, SlugLocale: language.Und}
}

// List returns every topic.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "List")
	defer span.End()
	return s.Repo.ListTopics(ctx, s.DB)
}

// Count returns the number of topics. Topics are never updated or deleted,
// so the count versions the listing.
func (s *TopicService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountTopics(ctx, s.DB)
}

// Create inserts a topic. A taken slug is a topics_pkey violation.
func (s *TopicService) Create(ctx context.Context, slug, description string) (*domain.Topic, error) {
	slug = s.NormalizeSlug(slug)
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "Create")
	span.SetAttributes(attribute.String("topic.slug", slug))
	defer span.End()

	if slug == "" {
		return nil, ErrEmptySlug
	}
	return s.Repo.CreateTopic(ctx, s.DB, slug, strings.TrimSpace(description))
}

// NormalizeSlug trims s and lower-cases it for SlugLocale.
func (s *TopicService) NormalizeSlug(slug string) string {
	return cases.Lower(s.SlugLocale).String(strings.TrimSpace(slug))
}
