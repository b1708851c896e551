// Package testutil holds helpers for tests that need a real PostgreSQL.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/infrastructure/database"
)

const (
	// DatabaseURLEnv names the DSN of a disposable test database
	DatabaseURLEnv = "CATALOG_TEST_DATABASE_URL"
	// RequireDatabaseEnv turns a missing DSN into a failure (make test-integration)
	RequireDatabaseEnv = "CATALOG_TEST_REQUIRE_DB"
)

// Pool connects to the test database, bootstraps the schema and empties
// every catalog table. The test is skipped when DatabaseURLEnv is unset,
// or fails when RequireDatabaseEnv is set as well.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn, missing := databaseURL()
	if missing != "" {
		if os.Getenv(RequireDatabaseEnv) != "" {
			t.Fatal(missing)
		}
		t.Skip(missing)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	db := &database.PostgresDB{Pool: pool}
	require.NoError(t, db.EnsureSchema(ctx))

	_, err = pool.Exec(ctx, `TRUNCATE book_author, book, author RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func databaseURL() (dsn, missing string) {
	dsn = os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		return "", fmt.Sprintf("%s not set, skipping PostgreSQL test (see make test-integration)", DatabaseURLEnv)
	}
	return dsn, ""
}

// InsertAuthor adds an author row and returns its id
func InsertAuthor(t *testing.T, pool *pgxpool.Pool, pseudonym string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO author (first_name, last_name, pseudonym) VALUES ('First', 'Last', $1) RETURNING id`,
		pseudonym).Scan(&id)
	require.NoError(t, err)
	return id
}

// InsertBook adds a book row linked to authorIDs in the given order and returns its id
func InsertBook(t *testing.T, pool *pgxpool.Pool, isbn13 string, authorIDs ...int64) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO book (title, total_pages, publisher, published_date, isbn_13)
		VALUES ('Title '||$1::text, 100, 'Publisher', DATE '2020-01-02', $1)
		RETURNING id`, isbn13).Scan(&id)
	require.NoError(t, err)

	for _, authorID := range authorIDs {
		_, err := pool.Exec(ctx, `INSERT INTO book_author (book_id, author_id) VALUES ($1, $2)`, id, authorID)
		require.NoError(t, err)
	}
	return id
}

// Count returns SELECT COUNT(*) of a catalog table
func Count(t *testing.T, pool *pgxpool.Pool, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
