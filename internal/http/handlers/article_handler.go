// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles                (list: sort_by, order, author, topic, limit, p)
//   - POST   /articles                (create)
//   - GET    /articles/{article_id}   (fetch with comment_count)
//   - PATCH  /articles/{article_id}   (vote)
//   - DELETE /articles/{article_id}   (delete with its comments)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/listing"
	"github.com/tbourn/go-news-api/internal/services"
	"github.com/tbourn/go-news-api/internal/validate"
)

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns a page of articles with their comment_count and the total number of articles matching the filters.
// @Description Unknown sort_by or order values fall back to created_at and desc; malformed limit or p fall back to 10 and 1.
// @Tags        Articles
// @Produce     json
//
// @Param       sort_by  query  string  false  "Sort column"      Enums(author, title, article_id, body, topic, created_at, votes, comment_count)  default(created_at)
// @Param       order    query  string  false  "Sort direction"   Enums(asc, desc)  default(desc)
// @Param       author   query  string  false  "Filter by author" example(icellusedkars)
// @Param       topic    query  string  false  "Filter by topic"  example(mitch)
// @Param       limit    query  int     false  "Page size"        minimum(0) default(10)
// @Param       p        query  int     false  "Page number"      minimum(1) default(1)
//
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	p, okp := listParams(c, listing.Articles)
	if !okp {
		return
	}

	items, total, err := h.articles.List(c.Request.Context(), p)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{TotalCount: total, Articles: items})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
//
// @Param       article_id  path  int  true  "Article ID"  example(1)
//
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}

	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// CreateArticle godoc
// @ID          createArticle
// @Summary     Create an article
// @Description Posts an article. An unknown author or topic is rejected with 422.
// @Tags        Articles
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateArticleRequest  true  "Article payload"
//
// @Success     201  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or extraneous fields"
// @Failure     422  {object}  handlers.ErrorResponse  "Unknown author or topic"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [post]
func (h *Handlers) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if !decodeBody(c, validate.Article, &req) {
		return
	}

	a, err := h.articles.Create(c.Request.Context(), services.NewArticle{
		Username: req.Username,
		Title:    req.Title,
		Body:     req.Body,
		Topic:    req.Topic,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}

// VoteArticle godoc
// @ID          voteArticle
// @Summary     Vote on an article
// @Description Adds inc_votes (which may be negative) to the article's votes. An empty body leaves votes unchanged.
// @Tags        Articles
// @Accept      json
// @Produce     json
//
// @Param       article_id  path  int                     true   "Article ID"  example(1)
// @Param       body        body  handlers.VoteRequest    false  "Vote increment"
//
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id or inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) VoteArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	var req VoteRequest
	if !decodeBody(c, validate.Votes, &req) {
		return
	}

	a, err := h.articles.Vote(c.Request.Context(), id, req.IncVotes)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// DeleteArticle godoc
// @ID          deleteArticle
// @Summary     Delete an article
// @Description Deletes the article and all of its comments.
// @Tags        Articles
//
// @Param       article_id  path  int  true  "Article ID"  example(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Non-numeric id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [delete]
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		failErr(c, err)
		return
	}
	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
