// Package services – ArticleService
//
// ArticleService exposes article listing, lookup, creation, voting and
// deletion. Missing articles surface as ErrArticleNotFound; storage
// constraint failures are returned unchanged for the classifier.
//
// Observability: every public method runs in an OpenTelemetry span.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/listing"
	"github.com/tbourn/go-news-api/internal/repo"
)

// ArticleRepo defines the repository contract required by ArticleService.
type ArticleRepo interface {
	// ListArticles returns a page of articles and the filtered total.
	ListArticles(ctx context.Context, db *gorm.DB, p listing.Params) ([]domain.Article, int64, error)

	// GetArticle fetches one article with its comment_count.
	GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error)

	// CreateArticle inserts an article and echoes the stored row.
	CreateArticle(ctx context.Context, db *gorm.DB, author, title, body, topic string) (*domain.Article, error)

	// IncrementArticleVotes atomically adds delta to the article's votes.
	IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error)

	// DeleteArticle removes an article and, by cascade, its comments.
	DeleteArticle(ctx context.Context, db *gorm.DB, id int64) error
}

// NewArticle is the payload for ArticleService.Create. Username becomes the
// article's author.
type NewArticle struct {
	Username string
	Title    string
	Body     string
	Topic    string
}

// ArticleService provides article-level operations.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the article repository used by this service.
	Repo ArticleRepo
}

// NewArticleService constructs an ArticleService.
func NewArticleService(db *gorm.DB, r ArticleRepo) *ArticleService {
	return &ArticleService{DB: db, Repo: r}
}

func articleSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/ArticleService").Start(ctx, name, trace.WithAttributes(attrs...))
}

// List returns the page of articles selected by p and the total number of
// articles matching p's filters.
func (s *ArticleService) List(ctx context.Context, p listing.Params) ([]domain.Article, int64, error) {
	ctx, span := articleSpan(ctx, "List",
		attribute.String("sort_by", p.SortBy),
		attribute.String("order", p.Order),
		attribute.Int("limit", p.Limit),
		attribute.Int("page", p.Page),
	)
	defer span.End()

	items, total, err := s.Repo.ListArticles(ctx, s.DB, p)
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}
	span.SetAttributes(attribute.Int64("total", total))
	return items, total, nil
}

// Get returns one article or ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, span := articleSpan(ctx, "Get", attribute.Int64("article.id", id))
	defer span.End()

	a, err := s.Repo.GetArticle(ctx, s.DB, id)
	return a, notFound(err, ErrArticleNotFound)
}

// Create inserts a new article authored by in.Username. An unknown author
// or topic is reported by the storage layer as a constraint violation.
func (s *ArticleService) Create(ctx context.Context, in NewArticle) (*domain.Article, error) {
	ctx, span := articleSpan(ctx, "Create",
		attribute.String("article.author", in.Username),
		attribute.String("article.topic", in.Topic),
	)
	defer span.End()

	a, err := s.Repo.CreateArticle(ctx, s.DB, in.Username, in.Title, in.Body, in.Topic)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return a, nil
}

// Vote adds delta (possibly negative or zero) to the article's votes.
func (s *ArticleService) Vote(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	ctx, span := articleSpan(ctx, "Vote", attribute.Int64("article.id", id), attribute.Int("delta", delta))
	defer span.End()

	a, err := s.Repo.IncrementArticleVotes(ctx, s.DB, id, delta)
	return a, notFound(err, ErrArticleNotFound)
}

// Delete removes an article or returns ErrArticleNotFound.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	ctx, span := articleSpan(ctx, "Delete", attribute.Int64("article.id", id))
	defer span.End()

	return notFound(s.Repo.DeleteArticle(ctx, s.DB, id), ErrArticleNotFound)
}

// notFound replaces a repository not-found error with sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return sentinel
	}
	return err
}
