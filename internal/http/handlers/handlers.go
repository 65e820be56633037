// Package handlers implements the REST endpoints of the news API.
//
// Handlers are transport-thin: they parse path ids and query strings,
// validate bodies against the payload schemas, call application services
// and translate results into the response envelopes. Every failure is
// handed to failErr, which classifies it once.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/listing"
	"github.com/tbourn/go-news-api/internal/services"
	"github.com/tbourn/go-news-api/internal/validate"
)

//
// Service contracts (context-aware)
//

// TopicService lists and creates topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, slug, description string) (*domain.Topic, error)
}

// UserService lists, fetches and creates users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, in services.NewUser) (*domain.User, error)
}

// ArticleService defines article operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	List(ctx context.Context, p listing.Params) ([]domain.Article, int64, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, in services.NewArticle) (*domain.Article, error)
	Vote(ctx context.Context, id int64, delta int) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64, p listing.Params) ([]domain.Comment, int64, error)
	// CreateIdempotent posts a comment; with a non-empty key a retry returns
	// the original comment and replayed=true.
	CreateIdempotent(ctx context.Context, articleID int64, key string, in services.NewComment) (*domain.Comment, bool, error)
	Vote(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for topics, users, articles and comments.
type Handlers struct {
	topics   TopicService
	users    UserService
	articles ArticleService
	comments CommentService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(topics TopicService, users UserService, articles ArticleService, comments CommentService) *Handlers {
	return &Handlers{topics: topics, users: users, articles: articles, comments: comments}
}

//
// DTOs
//

// CreateTopicRequest is the JSON payload for creating a topic.
type CreateTopicRequest struct {
	Slug        string `json:"slug" example:"football"`
	Description string `json:"description" example:"Footie!"`
}

// CreateUserRequest is the JSON payload for creating a user.
type CreateUserRequest struct {
	Username  string  `json:"username" example:"tickle122"`
	Name      string  `json:"name" example:"Tom Tickle"`
	AvatarURL *string `json:"avatar_url" example:"https://example.com/tickle.png"`
}

// CreateArticleRequest is the JSON payload for creating an article. Username
// becomes the article's author.
type CreateArticleRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Title    string `json:"title" example:"Living in the shadow of a great man"`
	Body     string `json:"body" example:"I find this existence challenging"`
	Topic    string `json:"topic" example:"mitch"`
}

// CreateCommentRequest is the JSON payload for commenting on an article.
type CreateCommentRequest struct {
	Username string `json:"username" example:"icellusedkars"`
	Body     string `json:"body" example:"I hate streaming noses"`
}

// VoteRequest adjusts a vote total. A missing inc_votes counts as 0.
type VoteRequest struct {
	IncVotes int `json:"inc_votes" example:"1"`
}

// TopicsResponse wraps the topic listing.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// TopicResponse wraps a single topic.
type TopicResponse struct {
	Topic *domain.Topic `json:"topic"`
}

// UsersResponse wraps the user listing.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// ArticlesResponse wraps a page of articles and the filtered total.
type ArticlesResponse struct {
	TotalCount int64            `json:"total_count" example:"12"`
	Articles   []domain.Article `json:"articles"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// CommentsResponse wraps a page of an article's comments and their total.
type CommentsResponse struct {
	TotalCount int64            `json:"total_count" example:"13"`
	Comments   []domain.Comment `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

//
// Helpers
//

// pathID parses the named path parameter as an integer id.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid Request. " + name + " must be numeric")
	}
	return id, nil
}

// decodeBody reads the request body and validates it against p before
// decoding into dst. A body over the size cap is a 413.
func decodeBody(c *gin.Context, p validate.Payload, dst any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, "payload_too_large", "Payload Too Large")
			return false
		}
		failErr(c, apperr.BadRequest("Invalid Request. body could not be read"))
		return false
	}
	if err := validate.Decode(c.Request.Context(), p, body, dst); err != nil {
		failErr(c, err)
		return false
	}
	return true
}

// listParams normalizes the listing query for res.
func listParams(c *gin.Context, res listing.Resource) (listing.Params, bool) {
	p, err := listing.Normalize(res, c.Request.URL.Query())
	if err != nil {
		failErr(c, err)
		return p, false
	}
	return p, true
}

// notModified sets a weak ETag built from the collection version and reports
// whether the client's If-None-Match already matches it.
func notModified(c *gin.Context, collection string, version int64) bool {
	etag := `W/"` + collection + ":" + strconv.FormatInt(version, 10) + `"`
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}
