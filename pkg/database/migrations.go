package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over debtor and docket fields when
// filtering the case list.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_collection_cases_search_gin
		ON collection_cases USING gin(to_tsvector('spanish', debtor_name || ' ' || rol))`)
	if err != nil {
		return fmt.Errorf("failed to create case search GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_case_documents_name_gin
		ON case_documents USING gin(to_tsvector('spanish', name))`)
	if err != nil {
		return fmt.Errorf("failed to create document name GIN index: %w", err)
	}

	return nil
}
