// Package services – CommentService
//
// CommentService lists and creates comments under an article and votes on or
// deletes individual comments. Comment creation optionally honours an
// Idempotency-Key: the comment and its idempotency record are written in one
// transaction, so a retried request with the same key returns the original
// comment instead of inserting a second one.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/listing"
	"github.com/tbourn/go-news-api/internal/repo"
)

// DefaultIdempotencyTTL is used when CommentService.IdempotencyTTL is unset.
const DefaultIdempotencyTTL = 24 * time.Hour

// CommentRepo defines the repository contract required by CommentService.
type CommentRepo interface {
	ListComments(ctx context.Context, db *gorm.DB, p listing.Params) ([]domain.Comment, int64, error)
	GetComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error)
	CreateComment(ctx context.Context, db *gorm.DB, articleID int64, author, body string) (*domain.Comment, error)
	IncrementCommentVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Comment, error)
	DeleteComment(ctx context.Context, db *gorm.DB, id int64) error
}

// ArticleGetter is the part of the article repository CommentService needs
// to tell a missing article from an empty thread.
type ArticleGetter interface {
	GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error)
}

// IdempotencyStore persists the outcome of keyed create requests.
type IdempotencyStore interface {
	GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error)
	CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key string, resourceID int64, status int, ttl time.Duration) (*domain.Idempotency, error)
}

// CommentService provides comment-level operations.
type CommentService struct {
	DB       *gorm.DB
	Repo     CommentRepo
	Articles ArticleGetter

	// Idem is optional; without it idempotency keys are ignored.
	Idem           IdempotencyStore
	IdempotencyTTL time.Duration
}

// NewComment is the payload for CommentService.Create. Username becomes the
// comment's author.
type NewComment struct {
	Username string
	Body     string
}

// CommentScope is the idempotency scope for comments posted to an article.
func CommentScope(articleID int64) string {
	return fmt.Sprintf("articles/%d/comments", articleID)
}

func commentSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/CommentService").Start(ctx, name, trace.WithAttributes(attrs...))
}

// ListForArticle returns a page of the article's comments and their total.
// A missing article is ErrArticleNotFound rather than an empty list.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64, p listing.Params) ([]domain.Comment, int64, error) {
	ctx, span := commentSpan(ctx, "ListForArticle",
		attribute.Int64("article.id", articleID),
		attribute.String("sort_by", p.SortBy),
		attribute.Int("limit", p.Limit),
		attribute.Int("page", p.Page),
	)
	defer span.End()

	if _, err := s.Articles.GetArticle(ctx, s.DB, articleID); err != nil {
		return nil, 0, notFound(err, ErrArticleNotFound)
	}
	items, total, err := s.Repo.ListComments(ctx, s.DB, p.With("article_id", articleID))
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}
	return items, total, nil
}

// Create posts a comment on articleID. A missing article or author surfaces
// as a constraint violation from storage.
func (s *CommentService) Create(ctx context.Context, articleID int64, in NewComment) (*domain.Comment, error) {
	c, _, err := s.CreateIdempotent(ctx, articleID, "", in)
	return c, err
}

// CreateIdempotent is Create keyed by an Idempotency-Key. replayed is true
// when key was already used for this article within the TTL and the
// original comment is returned. An empty key behaves like Create.
func (s *CommentService) CreateIdempotent(ctx context.Context, articleID int64, key string, in NewComment) (c *domain.Comment, replayed bool, err error) {
	ctx, span := commentSpan(ctx, "Create",
		attribute.Int64("article.id", articleID),
		attribute.String("comment.author", in.Username),
		attribute.Bool("idempotent", key != ""),
	)
	defer span.End()

	key = strings.TrimSpace(key)
	if key == "" || s.Idem == nil {
		c, err = s.Repo.CreateComment(ctx, s.DB, articleID, in.Username, in.Body)
		if err != nil {
			span.RecordError(err)
		}
		return c, false, err
	}

	scope := CommentScope(articleID)
	if prev, ok := s.replay(ctx, scope, key); ok {
		span.SetAttributes(attribute.Bool("replayed", true))
		return prev, true, nil
	}

	ttl := s.IdempotencyTTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := s.Repo.CreateComment(ctx, tx, articleID, in.Username, in.Body)
		if err != nil {
			return err
		}
		if _, err := s.Idem.CreateIdempotency(ctx, tx, scope, key, created.CommentID, http.StatusCreated, ttl); err != nil {
			return err
		}
		c = created
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		// a concurrent request with the same key committed first
		if prev, ok := s.replay(ctx, scope, key); ok {
			return prev, true, nil
		}
	}
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	return c, false, nil
}

// replay returns the comment recorded for (scope, key), if it still exists.
func (s *CommentService) replay(ctx context.Context, scope, key string) (*domain.Comment, bool) {
	rec, err := s.Idem.GetIdempotency(ctx, s.DB, scope, key, time.Now().UTC())
	if err != nil || rec == nil {
		return nil, false
	}
	prev, err := s.Repo.GetComment(ctx, s.DB, rec.ResourceID)
	if err != nil {
		return nil, false
	}
	return prev, true
}

// Vote adds delta to the comment's votes or returns ErrCommentNotFound.
func (s *CommentService) Vote(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	ctx, span := commentSpan(ctx, "Vote", attribute.Int64("comment.id", id), attribute.Int("delta", delta))
	defer span.End()

	c, err := s.Repo.IncrementCommentVotes(ctx, s.DB, id, delta)
	return c, notFound(err, ErrCommentNotFound)
}

// Delete removes a comment or returns ErrCommentNotFound.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	ctx, span := commentSpan(ctx, "Delete", attribute.Int64("comment.id", id))
	defer span.End()

	return notFound(s.Repo.DeleteComment(ctx, s.DB, id), ErrCommentNotFound)
}
