package commands

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-api/internal/config"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/repo"
)

func TestMain(m *testing.M) {
	// verify no goroutine leaks across tests in this package
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func countRows(t *testing.T, path string, model any) int64 {
	t.Helper()
	db, err := repo.Open(repo.Options{Path: path, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	defer repo.Close(db)
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestMigrate_Idempotent(t *testing.T) {
	path := useTempDB(t)
	require.NoError(t, run(t, "migrate"))
	require.NoError(t, run(t, "migrate"))
	assert.Zero(t, countRows(t, path, &domain.Topic{}))
}

func TestSeed_BuiltInAndFile(t *testing.T) {
	path := useTempDB(t)

	require.NoError(t, run(t, "seed"))
	assert.EqualValues(t, 12, countRows(t, path, &domain.Article{}))
	assert.EqualValues(t, 19, countRows(t, path, &domain.Comment{}))

	fixture := filepath.Join(t.TempDir(), "fx.yaml")
	require.NoError(t, os.WriteFile(fixture, []byte(`
topics:
  - slug: paper
    description: what books are made of
users:
  - username: lurker
    name: do_nothing
articles:
  - title: One
    topic: paper
    author: lurker
    body: only article
    created_at: 1542284514171
comments: []
`), 0o600))

	require.NoError(t, run(t, "seed", "--file", fixture))
	assert.EqualValues(t, 1, countRows(t, path, &domain.Article{}))
	assert.Zero(t, countRows(t, path, &domain.Comment{}))
}

func TestSeed_MissingFile(t *testing.T) {
	useTempDB(t)
	assert.Error(t, run(t, "seed", "-f", filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestPurge_RemovesExpired(t *testing.T) {
	path := useTempDB(t)
	require.NoError(t, run(t, "migrate"))

	db, err := repo.Open(repo.Options{Path: path, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	_, err = repo.CreateIdempotency(context.Background(), db, "articles/1/comments", "k1", 1, http.StatusCreated, -time.Minute)
	require.NoError(t, err)
	require.NoError(t, repo.Close(db))

	require.NoError(t, run(t, "purge"))
	assert.Zero(t, countRows(t, path, &domain.Idempotency{}))
}

func TestInvalidConfigFails(t *testing.T) {
	useTempDB(t)
	t.Setenv("DB_DRIVER", "oracle")
	assert.Error(t, run(t, "migrate"))
}

func TestEnvFile(t *testing.T) {
	useTempDB(t)
	env := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(env, []byte("SEED_FILE=/does/not/exist.yaml\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SEED_FILE") })

	// the env file points seed at a missing fixture
	assert.Error(t, run(t, "--env-file", env, "seed"))
	assert.Error(t, run(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"), "migrate"))
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}

func TestServe_GracefulShutdown(t *testing.T) {
	path := useTempDB(t)
	db, err := repo.Open(repo.Options{Path: path, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	defer repo.Close(db)
	require.NoError(t, repo.Migrate(context.Background(), db))

	cfg := config.Config{
		Port:              "0",
		ReadTimeout:       time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		MaxHeaderBytes:    1 << 20,
		GinMode:           "test",
		APIBasePath:       "/api",
		RateRPS:           100,
		RateBurst:         100,
		IdempotencyTTL:    time.Hour,
		OTEL:              config.OTELConfig{ServiceName: "news-api-test"},
	}
	srv := newHTTPServer(cfg, db)
	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 1<<20, srv.MaxHeaderBytes)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln, db, time.Second) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/api/topics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestSweepIdempotency_StopsOnCancel(t *testing.T) {
	path := useTempDB(t)
	db, err := repo.Open(repo.Options{Path: path, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	defer repo.Close(db)
	require.NoError(t, repo.Migrate(context.Background(), db))

	_, err = repo.CreateIdempotency(context.Background(), db, "articles/1/comments", "old", 1, http.StatusCreated, -time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sweepIdempotency(ctx, db, 10*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		var n int64
		return db.Model(&domain.Idempotency{}).Count(&n).Error == nil && n == 0
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done
}

func TestDBOptions_TracingFollowsOTEL(t *testing.T) {
	cfg := config.Config{DBDriver: "sqlite", DBPath: "news.db", LogLevel: "error"}

	assert.False(t, dbOptions(cfg, true).Tracing, "otel disabled must not install the SQL tracer")

	cfg.OTEL.Enabled = true
	assert.True(t, dbOptions(cfg, true).Tracing)
	assert.False(t, dbOptions(cfg, false).Tracing, "maintenance commands never trace")

	opts := dbOptions(cfg, false)
	assert.Equal(t, "sqlite", opts.Driver)
	assert.Equal(t, "news.db", opts.Path)
	assert.NotNil(t, opts.Logger)
}
