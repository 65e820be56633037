package handlers

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// Endpoint describes one route in the API index.
type Endpoint struct {
	Method      string `json:"method" example:"GET"`
	Path        string `json:"path" example:"/api/articles"`
	Description string `json:"description" example:"List articles"`
}

// IndexResponse is the body of GET /api.
type IndexResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}

var endpoints = []Endpoint{
	{http.MethodGet, "/", "This index"},
	{http.MethodGet, "/topics", "List topics"},
	{http.MethodPost, "/topics", "Create a topic"},
	{http.MethodGet, "/users", "List users"},
	{http.MethodPost, "/users", "Create a user"},
	{http.MethodGet, "/users/:username", "Get a user"},
	{http.MethodGet, "/articles", "List articles (sort_by, order, author, topic, limit, p)"},
	{http.MethodPost, "/articles", "Create an article"},
	{http.MethodGet, "/articles/:article_id", "Get an article"},
	{http.MethodPatch, "/articles/:article_id", "Vote on an article (inc_votes)"},
	{http.MethodDelete, "/articles/:article_id", "Delete an article and its comments"},
	{http.MethodGet, "/articles/:article_id/comments", "List an article's comments (sort_by, order, limit, p)"},
	{http.MethodPost, "/articles/:article_id/comments", "Comment on an article"},
	{http.MethodPatch, "/comments/:comment_id", "Vote on a comment (inc_votes)"},
	{http.MethodDelete, "/comments/:comment_id", "Delete a comment"},
}

// Index godoc
// @ID          apiIndex
// @Summary     List the API's endpoints
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  handlers.IndexResponse
// @Router      / [get]
func (h *Handlers) Index(basePath string) gin.HandlerFunc {
	out := make([]Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		p := path.Join("/", basePath, e.Path)
		out = append(out, Endpoint{Method: e.Method, Path: p, Description: e.Description})
	}
	resp := IndexResponse{Endpoints: out}
	return func(c *gin.Context) {
		ok(c, http.StatusOK, resp)
	}
}
