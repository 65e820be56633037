package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/seed"
	"github.com/tbourn/go-news-api/internal/sysutil"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the database contents with fixture data",
		Long: `Migrate the database, then truncate topics, users, articles and comments and
load fixtures. Without --file (or SEED_FILE) the built-in development data is used.

Examples:
  newsapi seed
  newsapi seed --file testdata/fixtures.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, src, err := loadFixtures(sysutil.FirstNonEmpty(file, os.Getenv("SEED_FILE")))
			if err != nil {
				return err
			}

			db, _, err := openDB(false)
			if err != nil {
				return err
			}
			defer repo.Close(db)

			ctx := cmd.Context()
			if err := repo.Migrate(ctx, db); err != nil {
				return err
			}
			if err := seed.Seed(ctx, db, fx); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			log.Info().
				Str("source", src).
				Int("topics", len(fx.Topics)).
				Int("users", len(fx.Users)).
				Int("articles", len(fx.Articles)).
				Int("comments", len(fx.Comments)).
				Msg("database seeded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture file")
	return cmd
}

func loadFixtures(path string) (*seed.Fixtures, string, error) {
	if path == "" {
		fx, err := seed.Default()
		return fx, "built-in", err
	}
	fx, err := seed.LoadFile(path)
	return fx, path, err
}
