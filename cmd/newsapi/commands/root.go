// Package commands implements the newsapi command line: serve, migrate,
// seed and purge.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/config"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/sysutil"
)

// Set at build time with -ldflags "-X .../commands.version=...".
var version = "dev"

// NewRootCmd builds the command tree. Every invocation gets fresh flag state.
func NewRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "newsapi",
		Short: "News REST API - topics, users, articles and comments",
		Long: `newsapi serves a REST API for a news site backed by SQLite or PostgreSQL.

Configuration comes from the environment (optionally loaded from a .env file):
  DB_DRIVER          sqlite (default) or postgres
  DB_PATH            SQLite database file (default: news.db)
  DATABASE_URL       PostgreSQL connection string
  PORT               listen port (default: 8080)
  API_BASE_PATH      API mount point (default: /api)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment from this file (default: .env when present)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd(), newPurgeCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnv loads path, or .env when path is empty. A missing default .env is
// not an error; variables already set win over the file.
func loadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load()
	}
	return nil
}

// openDB loads config, sets up logging and opens the configured database.
// SQL tracing is installed only when traced is set and OTEL is enabled.
func openDB(traced bool) (*gorm.DB, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	sysutil.SetupLogging(cfg.LogLevel, cfg.LogPretty, nil)

	db, err := repo.Open(dbOptions(cfg, traced))
	if err != nil {
		return nil, cfg, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}
	return db, cfg, nil
}

// dbOptions maps cfg onto repo.Options.
func dbOptions(cfg config.Config, traced bool) repo.Options {
	return repo.Options{
		Driver:       cfg.DBDriver,
		Path:         cfg.DBPath,
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		Tracing:      traced && cfg.OTEL.Enabled,
		Logger:       sysutil.GormLogger(cfg.LogLevel),
	}
}
