package commands

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-news-api/internal/repo"
)

func newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete expired idempotency records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDB(false)
			if err != nil {
				return err
			}
			defer repo.Close(db)

			n, err := repo.PurgeIdempotency(cmd.Context(), db, time.Now().UTC())
			if err != nil {
				return err
			}
			log.Info().Int64("removed", n).Msg("expired idempotency records purged")
			return nil
		},
	}
}
