package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/infrastructure/persistence"
	"github.com/punchlabs/punchup/internal/database"
	"github.com/punchlabs/punchup/internal/testdb"
)

func TestJokeStore_Save_InsertsRecord(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewJokeStore(testdb.New(t), "")

	record := joke.NewRecord("001", "setup", "punchline", "https://example.com").
		WithEnrichment("length_classification", enrichment.Result{"length_category": "short"})

	saved, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "001", saved.ID())

	loaded, err := store.FindByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, "setup", loaded.Setup())
	assert.Equal(t, "https://example.com", loaded.SourceURL())

	result, ok := loaded.Result("length_classification")
	require.True(t, ok)
	assert.Equal(t, "short", result["length_category"])
}

func TestJokeStore_Save_UpsertsByID(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewJokeStore(testdb.New(t), "")

	_, err := store.Save(ctx, joke.NewRecord("001", "old setup", "old punchline", ""))
	require.NoError(t, err)

	updated := joke.NewRecord("001", "new setup", "new punchline", "https://example.com").
		WithEnrichment("sentiment_analysis", enrichment.Result{"sentiment": "neutral"})
	_, err = store.Save(ctx, updated)
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	loaded, err := store.FindByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, "new setup", loaded.Setup())
	assert.Equal(t, "new punchline", loaded.Punchline())
	_, ok := loaded.Result("sentiment_analysis")
	assert.True(t, ok)
}

func TestJokeStore_Save_CustomTable(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewJokeStore(testdb.NewForTable(t, "funny_business"), "funny_business")

	_, err := store.Save(ctx, joke.NewRecord("001", "s", "p", ""))
	require.NoError(t, err)

	loaded, err := store.FindByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, "001", loaded.ID())
}

func TestJokeStore_FindByID_Missing(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewJokeStore(testdb.New(t), "")

	_, err := store.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestJokeMapper_RoundTrip(t *testing.T) {
	mapper := persistence.JokeMapper{}

	record := joke.NewRecord("001", "setup", "punchline", "https://example.com").
		WithEnrichment("keyword_extraction", enrichment.Result{"total_keywords": 2.0})

	model := mapper.ToModel(record)
	assert.Equal(t, "001", model.ID)
	assert.Contains(t, model.Enrichment, "keyword_extraction")

	restored := mapper.ToDomain(model)
	assert.Equal(t, record.ID(), restored.ID())
	assert.Equal(t, record.Setup(), restored.Setup())
	result, ok := restored.Result("keyword_extraction")
	require.True(t, ok)
	assert.Equal(t, 2.0, result["total_keywords"])
}

func TestJokeMapper_ToDomain_EmptyEnrichmentColumn(t *testing.T) {
	mapper := persistence.JokeMapper{}

	restored := mapper.ToDomain(persistence.JokeModel{ID: "001", Setup: "s", Punchline: "p"})
	assert.Empty(t, restored.Enrichment())
}
