// Package httpapi provides the HTTP server for the news API.
//
//	@title			News API
//	@version		1.0
//	@description	REST API for a news site: topics, users, articles and comments.
//	@description
//	@description	Article and comment listings accept sort_by, order (asc|desc), limit and p.
//	@description	Unknown sort columns and malformed paging fall back to defaults.
//	@description	Errors share one envelope: {"request_id", "code", "msg"}.
//
//	@license.name	MIT
//
//	@host			localhost:8080
//	@BasePath		/api
//
//	@tag.name			Topics
//	@tag.description	Subject areas articles are filed under.
//	@tag.name			Users
//	@tag.description	Authors of articles and comments.
//	@tag.name			Articles
//	@tag.description	Browse, post, vote on and delete articles.
//	@tag.name			Comments
//	@tag.description	Comment threads under articles. Posting honours Idempotency-Key.
package httpapi
