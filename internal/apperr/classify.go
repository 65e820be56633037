package apperr

import (
	"errors"
	"fmt"
)

// SQLSTATE codes understood by the classifier. Drivers that do not speak
// SQLSTATE (SQLite) are mapped onto these by the repository layer.
const (
	CodeNumericOutOfRange         = "22003"
	CodeInvalidTextRepresentation = "22P02"
	CodeNotNullViolation          = "23502"
	CodeForeignKeyViolation       = "23503"
	CodeUniqueViolation           = "23505"
	CodeUndefinedColumn           = "42703"
)

// Constraint names declared by the schema migrations.
const (
	ConstraintTopicsPK          = "topics_pkey"
	ConstraintUsersPK           = "users_pkey"
	ConstraintArticlesAuthorFK  = "articles_author_foreign"
	ConstraintArticlesTopicFK   = "articles_topic_foreign"
	ConstraintCommentsArticleFK = "comments_article_id_foreign"
	ConstraintCommentsAuthorFK  = "comments_author_foreign"
)

// ConstraintViolation is the storage-layer failure signal: the engine code
// and the name of the rule that fired (empty when the engine did not say).
type ConstraintViolation struct {
	Code       string
	Constraint string
	Err        error
}

// Error implements the error interface.
func (v *ConstraintViolation) Error() string {
	if v.Constraint == "" {
		return fmt.Sprintf("constraint violation %s: %v", v.Code, v.Err)
	}
	return fmt.Sprintf("constraint violation %s on %s: %v", v.Code, v.Constraint, v.Err)
}

// Unwrap returns the driver error.
func (v *ConstraintViolation) Unwrap() error { return v.Err }

// missingParent maps foreign-key constraints whose parent is the primary
// entity of the request path to NotFound.
var missingParent = map[string]bool{
	ConstraintCommentsArticleFK: true,
}

// conflicting maps constraints broken by a well-formed create payload to
// Unprocessable.
var conflicting = map[string]bool{
	ConstraintCommentsAuthorFK: true,
	ConstraintArticlesTopicFK:  true,
	ConstraintArticlesAuthorFK: true,
	ConstraintTopicsPK:         true,
	ConstraintUsersPK:          true,
}

// malformed lists codes that mean bad input when no constraint is named.
var malformed = map[string]bool{
	CodeNumericOutOfRange:         true,
	CodeInvalidTextRepresentation: true,
	CodeNotNullViolation:          true,
	CodeForeignKeyViolation:       true,
	CodeUndefinedColumn:           true,
}

// Classify reduces err to an *Error. It never returns nil for a non-nil err;
// for a nil err it returns nil.
//
// The same engine code can land in different kinds: a foreign-key failure on
// comments_article_id_foreign is NotFound, while one on comments_author_foreign
// is Unprocessable.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return classifyViolation(cv)
	}

	return Internal(err)
}

func classifyViolation(cv *ConstraintViolation) *Error {
	switch {
	case cv.Code == CodeForeignKeyViolation && missingParent[cv.Constraint]:
		return &Error{Kind: KindNotFound, Msg: MsgNotFound, Err: cv}
	case (cv.Code == CodeForeignKeyViolation || cv.Code == CodeUniqueViolation) && conflicting[cv.Constraint]:
		return &Error{Kind: KindUnprocessable, Msg: MsgUnprocessable, Err: cv}
	case cv.Constraint == "" && malformed[cv.Code]:
		return &Error{Kind: KindBadRequest, Msg: MsgBadRequest, Err: cv}
	default:
		return Internal(cv)
	}
}
