package repo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/tbourn/go-news-api/internal/apperr"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound so callers can match either.
var ErrNotFound = gorm.ErrRecordNotFound

// sqliteUnique captures "table.column" from SQLite's UNIQUE/PRIMARY KEY
// failure text, e.g. "UNIQUE constraint failed: topics.slug".
var sqliteUnique = regexp.MustCompile(`(?:UNIQUE|PRIMARY KEY) constraint failed: ([a-z_]+)\.([a-z_]+)`)

// sqliteKeys maps the columns behind named unique keys in the migrations.
var sqliteKeys = map[string]string{
	"topics.slug":    apperr.ConstraintTopicsPK,
	"users.username": apperr.ConstraintUsersPK,
}

// translate maps driver errors onto the repository's error contract:
// ErrNotFound for missing rows and *apperr.ConstraintViolation for engine
// rejections. Other errors pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &apperr.ConstraintViolation{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Err: err}
	}

	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		if cv := sqliteViolation(coded.Code(), err); cv != nil {
			return cv
		}
	}
	if cv := sqliteViolation(sqlite3.SQLITE_CONSTRAINT, err); cv != nil {
		return cv
	}
	return err
}

// sqliteViolation converts a SQLite result code into a violation. Primary
// SQLITE_CONSTRAINT (extended codes disabled) is resolved from the message.
func sqliteViolation(code int, err error) *apperr.ConstraintViolation {
	msg := err.Error()
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return &apperr.ConstraintViolation{Code: apperr.CodeForeignKeyViolation, Err: err}
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return &apperr.ConstraintViolation{Code: apperr.CodeUniqueViolation, Constraint: uniqueKey(msg), Err: err}
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return &apperr.ConstraintViolation{Code: apperr.CodeNotNullViolation, Err: err}
	case sqlite3.SQLITE_CONSTRAINT:
		switch {
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return sqliteViolation(sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, err)
		case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "PRIMARY KEY constraint failed"):
			return sqliteViolation(sqlite3.SQLITE_CONSTRAINT_UNIQUE, err)
		case strings.Contains(msg, "NOT NULL constraint failed"):
			return sqliteViolation(sqlite3.SQLITE_CONSTRAINT_NOTNULL, err)
		}
	}
	return nil
}

func uniqueKey(msg string) string {
	m := sqliteUnique.FindStringSubmatch(msg)
	if m == nil {
		return ""
	}
	return sqliteKeys[m[1]+"."+m[2]]
}

// fkRef names a foreign key a write could break and the parent row it needs.
type fkRef struct {
	constraint string
	table      string
	column     string
	value      any
}

// translateWrite is translate for inserts. SQLite does not report which
// foreign key failed, so the referenced parents are checked in order and the
// first missing one names the constraint.
func translateWrite(ctx context.Context, db *gorm.DB, err error, refs ...fkRef) error {
	err = translate(err)
	var cv *apperr.ConstraintViolation
	if !errors.As(err, &cv) || cv.Code != apperr.CodeForeignKeyViolation || cv.Constraint != "" {
		return err
	}
	for _, r := range refs {
		var n int64
		q := db.WithContext(ctx).Table(r.table).
			Where(clause.Eq{Column: clause.Column{Name: r.column}, Value: r.value})
		if qerr := q.Count(&n).Error; qerr != nil {
			return err
		}
		if n == 0 {
			cv.Constraint = r.constraint
			return cv
		}
	}
	return err
}
