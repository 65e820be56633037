// Package sysutil holds process-level helpers shared by the newsapi
// commands: log setup for zerolog and GORM, and small env parsing helpers.
package sysutil

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/logger"
)

// ParseLevel maps a LOG_LEVEL value onto a zerolog level. Matching is
// case-insensitive; "warning" is accepted for warn. Empty or unknown values
// are info.
func ParseLevel(lvl string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetLogLevel sets the global zerolog level from a LOG_LEVEL value.
func SetLogLevel(lvl string) {
	zerolog.SetGlobalLevel(ParseLevel(lvl))
}

// SetupLogging configures the global logger: millisecond timestamps, the
// level from lvl and, when pretty, a console writer on w (stderr if nil).
func SetupLogging(lvl string, pretty bool, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	SetLogLevel(lvl)
	if !pretty {
		return
	}
	if w == nil {
		w = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
}

// GormLogger returns GORM's SQL logger at a verbosity one step quieter than
// the service level: SQL statements only at debug, slow queries and
// warnings at info and warn, errors otherwise.
func GormLogger(lvl string) logger.Interface {
	return logger.Default.LogMode(GormLogLevel(lvl))
}

// GormLogLevel is the GORM log level used by GormLogger.
func GormLogLevel(lvl string) logger.LogLevel {
	switch ParseLevel(lvl) {
	case zerolog.DebugLevel:
		return logger.Info
	case zerolog.InfoLevel, zerolog.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}

// IsTruthy reports whether v reads as true.
// Accepted values (case-insensitive): "1", "true", "yes", "y", "on".
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// EnvBool reads key as a boolean. An unset or blank variable yields def.
func EnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return IsTruthy(v)
}

// FirstNonEmpty returns the first value that is not blank, unchanged.
// If all values are blank it returns "".
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
