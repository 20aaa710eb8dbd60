package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL.
// These enable containment queries over assembled packages and partial
// extractions (e.g. "which packages mention NPC X").
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for package document containment queries
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_lore_packages_document_gin
		ON lore_packages USING gin(document jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create lore_packages document GIN index: %w", err)
	}

	// GIN index for in-flight extraction containment queries
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_checkpoints_partial_extractions_gin
		ON checkpoints USING gin(partial_extractions jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create checkpoints partial_extractions GIN index: %w", err)
	}

	return nil
}

