// Package persistence provides database storage for enriched joke records.
package persistence

import (
	"time"

	"github.com/punchlabs/punchup/internal/database"
)

// DefaultTableName is the table enriched records land in unless configured
// otherwise.
const DefaultTableName = "enriched_jokes"

// JokeModel is the database row for an enriched joke record. The enrichment
// envelope is stored as a JSON text column so the row survives enricher
// additions without schema changes.
type JokeModel struct {
	ID         string    `gorm:"column:id;primaryKey;size:255"`
	Setup      string    `gorm:"column:setup;type:text"`
	Punchline  string    `gorm:"column:punchline;type:text"`
	SourceURL  string    `gorm:"column:source_url;size:2048"`
	Enrichment string    `gorm:"column:enrichment;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName returns the default table name.
func (JokeModel) TableName() string {
	return DefaultTableName
}

// AutoMigrate creates or updates the enriched joke table.
func AutoMigrate(db database.Database, table string) error {
	if table == "" {
		table = DefaultTableName
	}
	return db.GORM().Table(table).AutoMigrate(&JokeModel{})
}
