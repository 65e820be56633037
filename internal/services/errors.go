// Package services defines the business logic for topics, users, articles
// and comments. This file centralizes the service-level error values so that
// they can be returned consistently by service methods and checked by
// callers with errors.Is.
//
// Each value is an *apperr.Error, so handlers translate it to an HTTP status
// through apperr.Classify without a per-error mapping table.
package services

import "github.com/tbourn/go-news-api/internal/apperr"

var (
	// ErrArticleNotFound indicates that the article named by the path does
	// not exist.
	ErrArticleNotFound = apperr.NotFound("")

	// ErrCommentNotFound indicates that the comment named by the path does
	// not exist.
	ErrCommentNotFound = apperr.NotFound("")

	// ErrUserNotFound indicates that no user has the requested username.
	ErrUserNotFound = apperr.NotFound("")

	// ErrEmptySlug is returned when a topic slug is blank after
	// normalization.
	ErrEmptySlug = apperr.BadRequest("Invalid Request. slug must not be empty")
)
