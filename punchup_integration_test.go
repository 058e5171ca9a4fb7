package punchup_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchlabs/punchup"
	"github.com/punchlabs/punchup/application/service"
	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/infrastructure/enricher"
	"github.com/punchlabs/punchup/infrastructure/persistence"
	"github.com/punchlabs/punchup/internal/config"
	"github.com/punchlabs/punchup/internal/database"
)

const darkModeJoke = `{"joke_id":"001","setup":"Why do programmers prefer dark mode?","punchline":"Because light attracts bugs!"}`

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jokes.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func fileConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.NewAppConfigWithOptions(
		config.WithOutputPath(filepath.Join(t.TempDir(), "enriched.jsonl")),
		config.WithOutputMode(config.OutputModeFile),
	)
}

func newClient(t *testing.T, opts ...punchup.Option) *punchup.Client {
	t.Helper()
	opts = append(opts, punchup.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	client, err := punchup.New(context.Background(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_Run_LengthEnrichmentEndToEnd(t *testing.T) {
	cfg := fileConfig(t)
	client := newClient(t,
		punchup.WithConfig(cfg),
		punchup.WithEnrichments(enricher.KindLength),
	)

	input := writeInput(t, darkModeJoke)
	outcome, err := client.Run(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, outcome.Records, 1)
	result, ok := outcome.Records[0].Result("length_classification")
	require.True(t, ok)
	assert.Equal(t, 10, result["word_count"])
	assert.Equal(t, "short", result["length_category"])

	assert.Equal(t, 1, outcome.RunReport.TotalRecords())
	assert.Equal(t, 1, outcome.RunReport.Succeeded())
	assert.Equal(t, 1, outcome.WriteReport.Written())

	// The output file carries the enriched record, one JSON object per line.
	data, err := os.ReadFile(cfg.OutputPath())
	require.NoError(t, err)
	record, err := joke.ParseLine([]byte(strings.TrimSpace(string(data))))
	require.NoError(t, err)
	persisted, ok := record.Result("length_classification")
	require.True(t, ok)
	assert.Equal(t, "short", persisted["length_category"])
}

func TestClient_Run_AllEnrichers(t *testing.T) {
	client := newClient(t,
		punchup.WithConfig(fileConfig(t)),
		punchup.WithEnrichments(
			enricher.KindSentiment,
			enricher.KindKeywords,
			enricher.KindReadability,
			enricher.KindLength,
		),
	)

	outcome, err := client.Run(context.Background(), writeInput(t, darkModeJoke))
	require.NoError(t, err)

	require.Len(t, outcome.Records, 1)
	envelope := outcome.Records[0].Enrichment()
	assert.Contains(t, envelope, "sentiment_analysis")
	assert.Contains(t, envelope, "keyword_extraction")
	assert.Contains(t, envelope, "readability_scoring")
	assert.Contains(t, envelope, "length_classification")
	assert.Equal(t, "neutral", envelope["sentiment_analysis"]["sentiment"])
	assert.Equal(t, "easy", envelope["readability_scoring"]["readability_level"])
}

func TestClient_Run_MalformedLinesAreCountedNotFatal(t *testing.T) {
	client := newClient(t,
		punchup.WithConfig(fileConfig(t)),
		punchup.WithEnrichments(enricher.KindLength),
	)

	input := writeInput(t,
		darkModeJoke,
		`{broken json`,
		`{"setup":"no id","punchline":"p"}`,
		`{"joke_id":"002","setup":"s","punchline":"p"}`,
	)

	outcome, err := client.Run(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.RunReport.ParseFailures())
	assert.Equal(t, 2, outcome.RunReport.TotalRecords())
	assert.Len(t, outcome.Records, 2)

	summary := outcome.Summary()
	assert.Contains(t, summary, "Parse failures:  2")
	assert.Contains(t, summary, "Total records:   2")
}

func TestClient_Run_NoValidRecordsIsFatal(t *testing.T) {
	client := newClient(t,
		punchup.WithConfig(fileConfig(t)),
		punchup.WithEnrichments(enricher.KindLength),
	)

	input := writeInput(t, `{broken`, "")
	_, err := client.Run(context.Background(), input)
	assert.ErrorIs(t, err, service.ErrNoValidRecords)
}

func TestClient_Run_DatabaseModeUpsertsByID(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "punchup.db")
	cfg := config.NewAppConfigWithOptions(
		config.WithOutputMode(config.OutputModeDatabase),
		config.WithDBURL("sqlite://"+dbPath),
	)

	run := func(setup string) {
		client := newClient(t,
			punchup.WithConfig(cfg),
			punchup.WithEnrichments(enricher.KindLength),
		)
		defer func() { _ = client.Close() }()

		line := `{"joke_id":"001","setup":"` + setup + `","punchline":"p"}`
		outcome, err := client.Run(ctx, writeInput(t, line))
		require.NoError(t, err)
		assert.Equal(t, 1, outcome.WriteReport.Written())
		assert.Equal(t, "database:enriched_jokes", outcome.SinkName)
	}

	run("first version")
	run("second version")

	// Re-running with the same id replaced the row instead of adding one.
	db, err := database.NewDatabase(ctx, "sqlite://"+dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := persistence.NewJokeStore(db, "")
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	loaded, err := store.FindByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, "second version", loaded.Setup())
	_, ok := loaded.Result("length_classification")
	assert.True(t, ok)
}

func TestClient_Run_AfterCloseFails(t *testing.T) {
	client := newClient(t,
		punchup.WithConfig(fileConfig(t)),
		punchup.WithEnrichments(enricher.KindLength),
	)

	require.NoError(t, client.Close())
	_, err := client.Run(context.Background(), "anything.jsonl")
	assert.ErrorIs(t, err, punchup.ErrClientClosed)
	assert.ErrorIs(t, client.Close(), punchup.ErrClientClosed)
}

func TestClient_New_UnknownEnrichmentFails(t *testing.T) {
	_, err := punchup.New(context.Background(),
		punchup.WithConfig(fileConfig(t)),
		punchup.WithEnrichments("spellcheck"),
		punchup.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	assert.ErrorIs(t, err, enricher.ErrUnknownKind)
}

func TestClient_New_UnreachableDatabaseFails(t *testing.T) {
	cfg := config.NewAppConfigWithOptions(
		config.WithOutputMode(config.OutputModeDatabase),
		config.WithDBURL("mysql://nope"),
	)

	_, err := punchup.New(context.Background(),
		punchup.WithConfig(cfg),
		punchup.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.Error(t, err)

	var sinkErr *joke.SinkError
	assert.ErrorAs(t, err, &sinkErr)
}
