package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/domain/repository"
	"github.com/punchlabs/punchup/internal/database"
)

// JokeStore persists enriched joke records using GORM.
type JokeStore struct {
	database.Repository[joke.Record, JokeModel]
}

// NewJokeStore creates a JokeStore targeting the given table.
func NewJokeStore(db database.Database, table string) JokeStore {
	if table == "" {
		table = DefaultTableName
	}
	return JokeStore{
		Repository: database.NewRepositoryForTable[joke.Record, JokeModel](db, JokeMapper{}, "joke", table),
	}
}

// Save creates or updates a record, keyed by its joke id. A re-run with the
// same id replaces the row's content; created_at survives, updated_at moves.
func (s JokeStore) Save(ctx context.Context, record joke.Record) (joke.Record, error) {
	model := s.Mapper().ToModel(record)
	now := time.Now().UTC()
	model.CreatedAt = now
	model.UpdatedAt = now

	result := s.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"setup", "punchline", "source_url", "enrichment", "updated_at"}),
	}).Create(&model)

	if result.Error != nil {
		return joke.Record{}, fmt.Errorf("save joke: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// FindByID retrieves one record by joke id.
func (s JokeStore) FindByID(ctx context.Context, id string) (joke.Record, error) {
	return s.FindOne(ctx, repository.WithID(id))
}
