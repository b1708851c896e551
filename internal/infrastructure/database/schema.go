package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schemaStatements create the catalog tables when they are missing.
// No versioning: a changed statement does not alter an existing table.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS author (
		id          BIGSERIAL PRIMARY KEY,
		first_name  VARCHAR(100) NOT NULL,
		middle_name VARCHAR(100),
		last_name   VARCHAR(100) NOT NULL,
		pseudonym   VARCHAR(100) NOT NULL,
		CONSTRAINT author_pseudonym_key UNIQUE (pseudonym)
	)`,
	`CREATE TABLE IF NOT EXISTS book (
		id             BIGSERIAL PRIMARY KEY,
		title          VARCHAR(255) NOT NULL,
		subtitle       VARCHAR(255),
		total_pages    INTEGER NOT NULL CHECK (total_pages > 0),
		publisher      VARCHAR(50) NOT NULL,
		published_date DATE NOT NULL,
		isbn_13        VARCHAR(13) NOT NULL,
		isbn_10        VARCHAR(10),
		CONSTRAINT book_isbn_13_key UNIQUE (isbn_13)
	)`,
	`CREATE TABLE IF NOT EXISTS book_author (
		book_id   BIGINT NOT NULL REFERENCES book (id) ON DELETE CASCADE,
		author_id BIGINT NOT NULL REFERENCES author (id) ON DELETE CASCADE,
		seq       BIGINT GENERATED ALWAYS AS IDENTITY,
		PRIMARY KEY (book_id, author_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_author_author_id ON book_author (author_id)`,
}

// EnsureSchema runs the bootstrap statements in order
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}

	log.Info().Msg("Database schema ready")
	return nil
}
