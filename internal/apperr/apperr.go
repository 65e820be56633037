// Package apperr defines the error taxonomy shared by the repository, service
// and HTTP layers. Every failure that reaches a handler is reduced to one of a
// small set of kinds, each carrying a caller-safe message, and the HTTP layer
// maps the kind to a status code.
//
// Two kinds of structured signals feed the classifier:
//   - *Error values created by validation code (BadRequest, NotFound, …),
//     which already carry their kind;
//   - *ConstraintViolation values produced by the repository layer when the
//     storage engine rejects a write, carrying the SQLSTATE-style code and the
//     name of the constraint that fired.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind is the category of an application error.
type Kind int

const (
	// KindInternal is the catch-all for anything unclassified.
	KindInternal Kind = iota
	// KindBadRequest marks malformed input the caller can fix.
	KindBadRequest
	// KindNotFound marks a missing primary entity or route.
	KindNotFound
	// KindUnprocessable marks a well-formed request that violates a
	// referential or uniqueness rule at creation time.
	KindUnprocessable
	// KindMethodNotAllowed marks an unsupported verb on a known path.
	KindMethodNotAllowed
)

// Public messages, one per kind.
const (
	MsgBadRequest       = "Bad Request"
	MsgNotFound         = "Resource Not Found"
	MsgRouteNotFound    = "Route Not Found"
	MsgUnprocessable    = "Unprocessable Entity"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgInternal         = "Internal Server Error"
)

// String returns the stable, machine-readable code for k.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindUnprocessable:
		return "unprocessable_entity"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindInternal:
		return "internal_error"
	}
	return "internal_error"
}

// Status returns the HTTP status code for k.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Error is a classified application error. Msg is safe to show to callers;
// Err (optional) is the underlying cause and is only ever logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int { return e.Kind.Status() }

func newErr(k Kind, def, msg string) *Error {
	if msg == "" {
		msg = def
	}
	return &Error{Kind: k, Msg: msg}
}

// BadRequest returns a KindBadRequest error. An empty msg uses MsgBadRequest.
func BadRequest(msg string) *Error { return newErr(KindBadRequest, MsgBadRequest, msg) }

// NotFound returns a KindNotFound error. An empty msg uses MsgNotFound.
func NotFound(msg string) *Error { return newErr(KindNotFound, MsgNotFound, msg) }

// Unprocessable returns a KindUnprocessable error.
func Unprocessable(msg string) *Error {
	return newErr(KindUnprocessable, MsgUnprocessable, msg)
}

// MethodNotAllowed returns a KindMethodNotAllowed error.
func MethodNotAllowed() *Error {
	return newErr(KindMethodNotAllowed, MsgMethodNotAllowed, "")
}

// Internal wraps cause as a KindInternal error with the generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Msg: MsgInternal, Err: cause}
}

// IsKind reports whether err classifies as k. A nil err matches nothing.
func IsKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	return Classify(err).Kind == k
}
