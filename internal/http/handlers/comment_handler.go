// Comment HTTP handlers.
//
// This file exposes REST endpoints for comments:
//   - GET    /articles/{article_id}/comments   (list: sort_by, order, limit, p)
//   - POST   /articles/{article_id}/comments   (create, Idempotency-Key aware)
//   - PATCH  /comments/{comment_id}            (vote)
//   - DELETE /comments/{comment_id}            (delete)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a comment was already
// created with that key for the same article, the original comment is
// returned with `Idempotency-Replayed: true` instead of a second insert.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/http/middleware"
	"github.com/tbourn/go-news-api/internal/listing"
	"github.com/tbourn/go-news-api/internal/services"
	"github.com/tbourn/go-news-api/internal/validate"
)

// ListComments godoc
// @ID          listComments
// @Summary     List an article's comments
// @Description Returns a page of the article's comments and their total. A missing article is 404, an article without comments an empty list.
// @Tags        Comments
// @Produce     json
//
// @Param       article_id  path   int     true   "Article ID"      example(1)
// @Param       sort_by     query  string  false  "Sort column"     Enums(comment_id, votes, created_at, author, body)  default(created_at)
// @Param       order       query  string  false  "Sort direction"  Enums(asc, desc)  default(desc)
// @Param       limit       query  int     false  "Page size"       minimum(0) default(10)
// @Param       p           query  int     false  "Page number"     minimum(1) default(1)
//
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	// the path names the article; a query-string article_id is ignored
	q := c.Request.URL.Query()
	q.Del("article_id")
	p, err := listing.Normalize(listing.Comments, q)
	if err != nil {
		failErr(c, err)
		return
	}

	items, total, err := h.comments.ListForArticle(c.Request.Context(), id, p)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{TotalCount: total, Comments: items})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Comment on an article
// @Description Posts a comment as username. A missing article is 404, an unknown username 422.
// @Description Supports idempotency via the Idempotency-Key header (same key and article, same comment).
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string                          false  "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       article_id       path    int                             true   "Article ID"  example(1)
// @Param       body             body    handlers.CreateCommentRequest  true   "Comment payload"
//
// @Success     201  {object}  handlers.CommentResponse
// @Header      201  {string}  Idempotency-Replayed  "true when the comment was created by an earlier request"
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id, empty body or extraneous fields"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     422  {object}  handlers.ErrorResponse  "Unknown author"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	var req CreateCommentRequest
	if !decodeBody(c, validate.Comment, &req) {
		return
	}

	key, _ := middleware.GetIdempotencyKey(c)
	cm, replayed, err := h.comments.CreateIdempotent(c.Request.Context(), id, key, services.NewComment{
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	if replayed {
		c.Header("Idempotency-Replayed", "true")
		middleware.LoggerFrom(c).Info().Int64("comment_id", cm.CommentID).Msg("idempotent replay")
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// VoteComment godoc
// @ID          voteComment
// @Summary     Vote on a comment
// @Description Adds inc_votes (which may be negative) to the comment's votes. An empty body leaves votes unchanged.
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       comment_id  path  int                   true   "Comment ID"  example(1)
// @Param       body        body  handlers.VoteRequest  false  "Vote increment"
//
// @Success     200  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id or inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) VoteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		failErr(c, err)
		return
	}
	var req VoteRequest
	if !decodeBody(c, validate.Votes, &req) {
		return
	}

	cm, err := h.comments.Vote(c.Request.Context(), id, req.IncVotes)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
//
// @Param       comment_id  path  int  true  "Comment ID"  example(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		failErr(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
