// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/listing"
)

// ListComments returns the page of comments selected by p and the filtered
// total.
func ListComments(ctx context.Context, db *gorm.DB, p listing.Params) ([]domain.Comment, int64, error) {
	plan := listing.CommentPlan(db.WithContext(ctx), p)

	out := []domain.Comment{}
	if err := plan.Page.Find(&out).Error; err != nil {
		return nil, 0, translate(err)
	}
	var total int64
	if err := plan.Count.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	return out, total, nil
}

// GetComment fetches a single comment by id or returns ErrNotFound.
func GetComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := db.WithContext(ctx).
		Where("comment_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// CreateComment inserts a comment on articleID. A missing article yields a
// violation of comments_article_id_foreign, a missing author one of
// comments_author_foreign.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int64, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, translateWrite(ctx, db, err,
			fkRef{apperr.ConstraintCommentsArticleFK, "articles", "article_id", articleID},
			fkRef{apperr.ConstraintCommentsAuthorFK, "users", "username", author},
		)
	}
	return c, nil
}

// IncrementCommentVotes adds delta to a comment's votes atomically.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Comment, error) {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetComment(ctx, db, id)
}

// DeleteComment removes a comment or returns ErrNotFound.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
