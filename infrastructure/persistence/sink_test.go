package persistence_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/infrastructure/persistence"
	"github.com/punchlabs/punchup/internal/testdb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDatabaseSink_Write_PersistsAllRecords(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewJokeStore(db, "")
	sink := persistence.NewDatabaseSink(store, "", 0, discardLogger())

	records := []joke.Record{
		joke.NewRecord("001", "s1", "p1", ""),
		joke.NewRecord("002", "s2", "p2", ""),
		joke.NewRecord("003", "s3", "p3", ""),
	}

	report, err := sink.Write(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Written())
	assert.Empty(t, report.FailedIDs())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDatabaseSink_Write_RerunReplacesRows(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewJokeStore(db, "")
	sink := persistence.NewDatabaseSink(store, "", 0, discardLogger())

	_, err := sink.Write(ctx, []joke.Record{joke.NewRecord("001", "first run", "p", "")})
	require.NoError(t, err)
	_, err = sink.Write(ctx, []joke.Record{joke.NewRecord("001", "second run", "p", "")})
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	loaded, err := store.FindByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, "second run", loaded.Setup())
}

func TestDatabaseSink_Write_ClosedDatabaseReportsFailedIDs(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewJokeStore(db, "")
	sink := persistence.NewDatabaseSink(store, "", time.Second, discardLogger())

	require.NoError(t, db.Close())

	records := []joke.Record{
		joke.NewRecord("001", "s1", "p1", ""),
		joke.NewRecord("002", "s2", "p2", ""),
	}

	report, err := sink.Write(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written())
	assert.Equal(t, []string{"001", "002"}, report.FailedIDs())
}

func TestDatabaseSink_Write_CancelledContext(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJokeStore(db, "")
	sink := persistence.NewDatabaseSink(store, "", time.Second, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sink.Write(ctx, []joke.Record{joke.NewRecord("001", "s", "p", "")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDatabaseSink_Write_EmptyBatch(t *testing.T) {
	store := persistence.NewJokeStore(testdb.New(t), "")
	sink := persistence.NewDatabaseSink(store, "", 0, discardLogger())

	report, err := sink.Write(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written())
}

func TestDatabaseSink_Name(t *testing.T) {
	store := persistence.NewJokeStore(testdb.New(t), "")

	assert.Equal(t, "database:enriched_jokes", persistence.NewDatabaseSink(store, "", 0, discardLogger()).Name())
	assert.Equal(t, "database:custom", persistence.NewDatabaseSink(store, "custom", 0, discardLogger()).Name())
}

var _ joke.Sink = (*persistence.DatabaseSink)(nil)
