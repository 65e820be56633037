package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/go-news-api/docs"
	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/config"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/http/handlers"
	"github.com/tbourn/go-news-api/internal/http/middleware"
	"github.com/tbourn/go-news-api/internal/listing"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/services"
)

// Repository shims adapt the repo free functions to the interfaces the
// services expect, keeping services decoupled from the concrete repo package.

type topicRepoShim struct{}

func (topicRepoShim) ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	return repo.ListTopics(ctx, db)
}

func (topicRepoShim) CreateTopic(ctx context.Context, db *gorm.DB, slug, description string) (*domain.Topic, error) {
	return repo.CreateTopic(ctx, db, slug, description)
}

func (topicRepoShim) CountTopics(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountTopics(ctx, db)
}

type userRepoShim struct{}

func (userRepoShim) ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	return repo.ListUsers(ctx, db)
}

func (userRepoShim) GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.GetUser(ctx, db, username)
}

func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, username, name string, avatarURL *string) (*domain.User, error) {
	return repo.CreateUser(ctx, db, username, name, avatarURL)
}

func (userRepoShim) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountUsers(ctx, db)
}

type articleRepoShim struct{}

func (articleRepoShim) ListArticles(ctx context.Context, db *gorm.DB, p listing.Params) ([]domain.Article, int64, error) {
	return repo.ListArticles(ctx, db, p)
}

func (articleRepoShim) GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	return repo.GetArticle(ctx, db, id)
}

func (articleRepoShim) CreateArticle(ctx context.Context, db *gorm.DB, author, title, body, topic string) (*domain.Article, error) {
	return repo.CreateArticle(ctx, db, author, title, body, topic)
}

func (articleRepoShim) IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	return repo.IncrementArticleVotes(ctx, db, id, delta)
}

func (articleRepoShim) DeleteArticle(ctx context.Context, db *gorm.DB, id int64) error {
	return repo.DeleteArticle(ctx, db, id)
}

type commentRepoShim struct{}

func (commentRepoShim) ListComments(ctx context.Context, db *gorm.DB, p listing.Params) ([]domain.Comment, int64, error) {
	return repo.ListComments(ctx, db, p)
}

func (commentRepoShim) GetComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	return repo.GetComment(ctx, db, id)
}

func (commentRepoShim) CreateComment(ctx context.Context, db *gorm.DB, articleID int64, author, body string) (*domain.Comment, error) {
	return repo.CreateComment(ctx, db, articleID, author, body)
}

func (commentRepoShim) IncrementCommentVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Comment, error) {
	return repo.IncrementCommentVotes(ctx, db, id, delta)
}

func (commentRepoShim) DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	return repo.DeleteComment(ctx, db, id)
}

type idempotencyShim struct{}

func (idempotencyShim) GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error) {
	return repo.GetIdempotency(ctx, db, scope, key, now)
}

func (idempotencyShim) CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key string, resourceID int64, status int, ttl time.Duration) (*domain.Idempotency, error) {
	return repo.CreateIdempotency(ctx, db, scope, key, resourceID, status, ttl)
}

// commentScope names the idempotency scope of a keyed request. Only comment
// creation is keyed; every other request gets the empty scope.
func commentScope(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	id, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		return ""
	}
	return services.CommentScope(id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the news API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Idempotency validator (before rate limiter to allow bypass on replay)
//  8. Rate limiter (per client IP, bypass on replay)
//  9. CORS, security headers and compression
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
			Scope:  commentScope,
		},
		func(ctx context.Context, scope, key string, now time.Time) (bool, error) {
			_, err := repo.GetIdempotency(ctx, db, scope, key, now)
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, repo.ErrNotFound):
				return false, nil
			default:
				return false, err
			}
		},
	))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	allowMethods := []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	allowHeaders := []string{"Origin", "Content-Type", "Accept", "If-None-Match", middleware.HeaderIdempotencyKey}
	exposeHeaders := []string{"X-Request-ID", "Content-Length", "ETag", "Idempotency-Replayed"}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     allowMethods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     allowMethods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		CachePolicy:  true,
		EnablePolicy: true,
	}))

	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, apperr.MsgRouteNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, apperr.MsgMethodNotAllowed)
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	articleRepo := articleRepoShim{}
	topicSvc := services.NewTopicService(db, topicRepoShim{})
	userSvc := services.NewUserService(db, userRepoShim{})
	articleSvc := services.NewArticleService(db, articleRepo)
	commentSvc := &services.CommentService{
		DB:             db,
		Repo:           commentRepoShim{},
		Articles:       articleRepo,
		Idem:           idempotencyShim{},
		IdempotencyTTL: cfg.IdempotencyTTL,
	}
	h := handlers.New(topicSvc, userSvc, articleSvc, commentSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api"
	api := groupWithPrefix(r, apiBase)
	{
		// Index; other verbs on the base path fall through to NoMethod (405)
		api.GET("", h.Index(apiBase))

		// Topics
		api.GET("/topics", h.ListTopics)
		api.POST("/topics", h.CreateTopic)

		// Users
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:username", h.GetUser)

		// Articles
		api.GET("/articles", h.ListArticles)
		api.POST("/articles", h.CreateArticle)
		api.GET("/articles/:article_id", h.GetArticle)
		api.PATCH("/articles/:article_id", h.VoteArticle)
		api.DELETE("/articles/:article_id", h.DeleteArticle)

		// Comments
		api.GET("/articles/:article_id/comments", h.ListComments)
		api.POST("/articles/:article_id/comments", h.CreateComment)
		api.PATCH("/comments/:comment_id", h.VoteComment)
		api.DELETE("/comments/:comment_id", h.DeleteComment)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
