// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints:
// the error envelope, the classifier-driven failErr, and small success
// helpers. Every failure leaves a handler through fail or failErr so error
// bodies are uniform and 5xx responses are logged with request context.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "msg": "Resource Not Found"
//	}
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "article": { "article_id": 1, "title": "Living in the shadow of a great man", ... } }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: correlation ID echoed from X-Request-ID.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Msg: a human-readable description, safe for display to users. Driver
//     text never appears here.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Msg string `json:"msg" example:"Resource Not Found"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Msg:       msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("msg", msg).
			Msg("api error")
	}
	middleware.ObserveError(code)

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), used by the router fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failErr classifies err and writes the matching envelope. The cause of a
// 5xx is logged but never sent to the client.
func failErr(c *gin.Context, err error) {
	ae := apperr.Classify(err)
	if ae.Kind == apperr.KindInternal {
		middleware.LoggerFrom(c).Error().Err(err).Msg("unclassified failure")
	} else if ae.Err != nil {
		middleware.LoggerFrom(c).Debug().Err(ae.Err).Str("code", ae.Kind.String()).Msg("rejected")
	}
	fail(c, ae.Status(), ae.Kind.String(), ae.Msg)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
