// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and match apperr.Kind.String(), so the code
// written by failErr and the one used by the router fallbacks agree. Clients
// branch on code; msg is for humans.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "unprocessable_entity",
//	  "msg": "Unprocessable Entity"
//	}
package handlers

import "github.com/tbourn/go-news-api/internal/apperr"

var (
	ErrCodeBadRequest       = apperr.KindBadRequest.String()
	ErrCodeNotFound         = apperr.KindNotFound.String()
	ErrCodeUnprocessable    = apperr.KindUnprocessable.String()
	ErrCodeMethodNotAllowed = apperr.KindMethodNotAllowed.String()
	ErrCodeInternal         = apperr.KindInternal.String()
)
