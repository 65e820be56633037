// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. Listing
// and single fetches go through the listing query plans so comment_count is
// always computed by the same aggregate statement.
//
// Error semantics:
//   - Missing rows surface as ErrNotFound.
//   - Engine rejections (foreign keys, unique keys, NOT NULL) surface as
//     *apperr.ConstraintViolation carrying the constraint name.
//   - Anything else is returned as is.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/listing"
)

// ListArticles returns the page of articles selected by p together with the
// number of articles matching p's filters, ignoring limit and page.
func ListArticles(ctx context.Context, db *gorm.DB, p listing.Params) ([]domain.Article, int64, error) {
	plan := listing.ArticlePlan(db.WithContext(ctx), p)

	out := []domain.Article{}
	if err := plan.Page.Find(&out).Error; err != nil {
		return nil, 0, translate(err)
	}
	var total int64
	if err := plan.Count.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	return out, total, nil
}

// GetArticle fetches one article, including its comment_count.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	p := listing.Defaults().With("article_id", id)
	p.Limit = 1

	var out []domain.Article
	if err := listing.ArticlePlan(db.WithContext(ctx), p).Page.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// CreateArticle inserts an article with zero votes and a UTC timestamp.
// The returned row is re-read so defaults and comment_count are echoed.
func CreateArticle(ctx context.Context, db *gorm.DB, author, title, body, topic string) (*domain.Article, error) {
	a := &domain.Article{
		Author:    author,
		Title:     title,
		Body:      body,
		Topic:     topic,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, translateWrite(ctx, db, err,
			fkRef{apperr.ConstraintArticlesTopicFK, "topics", "slug", topic},
			fkRef{apperr.ConstraintArticlesAuthorFK, "users", "username", author},
		)
	}
	return GetArticle(ctx, db, a.ArticleID)
}

// IncrementArticleVotes adds delta to the stored vote count in a single
// UPDATE and returns the updated article. A missing article is ErrNotFound.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetArticle(ctx, db, id)
}

// DeleteArticle removes an article; its comments go with it (ON DELETE
// CASCADE). A missing article is ErrNotFound.
func DeleteArticle(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("article_id = ?", id).
		Delete(&domain.Article{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
