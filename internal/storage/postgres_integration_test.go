package storage

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/oakvale/homestead/internal/database"
	"github.com/oakvale/homestead/internal/domain"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("failed to terminate container: %v\n", err)
		}
	}
}

func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("skipping integration test: database not available")
	}

	pool, err := database.Connect(context.Background(), database.Config{
		ConnString:  testDBConnString,
		MaxConns:    5,
		MinConns:    1,
		MaxIdleTime: time.Minute,
		MaxLifetime: 5 * time.Minute,
	}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewPostgresStore(pool, slog.Default())
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()
	want := snapshotFixture(t)

	require.NoError(t, store.SaveSnapshot(ctx, "it-slot1", want))

	got, err := store.LoadSnapshot(ctx, "it-slot1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostgresStoreUpsert(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	first := snapshotFixture(t)
	require.NoError(t, store.SaveSnapshot(ctx, "it-slot2", first))

	second := snapshotFixture(t)
	second.Day = 50
	require.NoError(t, store.SaveSnapshot(ctx, "it-slot2", second))

	got, err := store.LoadSnapshot(ctx, "it-slot2")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Day)
}

func TestPostgresStoreMissingSlot(t *testing.T) {
	store := newTestPostgresStore(t)

	_, err := store.LoadSnapshot(context.Background(), "it-missing")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
