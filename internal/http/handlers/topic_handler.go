// Topic HTTP handlers.
//
//   - GET  /topics   (list, weak ETag)
//   - POST /topics   (create)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/validate"
)

// ListTopics godoc
// @ID          listTopics
// @Summary     List topics
// @Description Returns every topic ordered by slug. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Topics
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"  example(W/\"topics:3\")
//
// @Success     200  {object}  handlers.TopicsResponse
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if n, err := h.topics.Count(ctx); err == nil && notModified(c, "topics", n) {
		return
	}

	topics, err := h.topics.List(ctx)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}

// CreateTopic godoc
// @ID          createTopic
// @Summary     Create a topic
// @Description Creates a topic. Slugs are trimmed and lower-cased; a slug that is already taken is rejected with 422.
// @Tags        Topics
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateTopicRequest  true  "Topic payload"
//
// @Success     201  {object}  handlers.TopicResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or extraneous fields"
// @Failure     422  {object}  handlers.ErrorResponse  "Slug already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [post]
func (h *Handlers) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if !decodeBody(c, validate.Topic, &req) {
		return
	}

	t, err := h.topics.Create(c.Request.Context(), req.Slug, req.Description)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, TopicResponse{Topic: t})
}
