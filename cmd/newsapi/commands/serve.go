package commands

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/config"
	httpapi "github.com/tbourn/go-news-api/internal/http"
	"github.com/tbourn/go-news-api/internal/observability"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/sysutil"
)

// purgeEvery is how often serve sweeps expired idempotency records.
const purgeEvery = time.Hour

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and block until SIGINT or SIGTERM, then drain
in-flight requests for up to SHUTDOWN_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", sysutil.EnvBool("AUTO_MIGRATE", true),
		"Apply pending migrations before serving (env AUTO_MIGRATE)")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	db, cfg, err := openDB(true)
	if err != nil {
		return err
	}
	defer repo.Close(db)

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	if migrate {
		if err := repo.Migrate(ctx, db); err != nil {
			return err
		}
	}

	srv := newHTTPServer(cfg, db)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	return serve(ctx, srv, ln, db, cfg.ShutdownTimeout)
}

// newHTTPServer builds the Gin engine and the http.Server around it.
func newHTTPServer(cfg config.Config, db *gorm.DB) *http.Server {
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
// The idempotency sweeper runs for the lifetime of the server.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, db *gorm.DB, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("version", version).Msg("news api listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sweepDone := make(chan struct{})
	sweepCtx, stopSweep := context.WithCancel(ctx)
	go func() {
		defer close(sweepDone)
		sweepIdempotency(sweepCtx, db, purgeEvery)
	}()
	defer func() {
		stopSweep()
		<-sweepDone
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	<-errCh
	log.Info().Msg("server exited")
	return nil
}

func sweepIdempotency(ctx context.Context, db *gorm.DB, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := repo.PurgeIdempotency(ctx, db, now.UTC())
			if err != nil {
				log.Warn().Err(err).Msg("idempotency purge failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("removed", n).Msg("expired idempotency records purged")
			}
		}
	}
}
