package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/pagination"
	"catalog-backend/pkg/database"
)

const bookColumns = `id, title, subtitle, total_pages, publisher, published_date, isbn_13, isbn_10`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the book store on the shared pool
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.Subtitle, &b.TotalPages, &b.Publisher, &b.PublishedDate, &b.Isbn13, &b.Isbn10)
}

func (r *postgresRepository) FindAll(ctx context.Context, page pagination.PageRequest) ([]model.BookWithAuthors, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	// OrderBy only renders whitelisted columns
	query := `SELECT ` + bookColumns + ` FROM book ` + page.OrderBy() + ` LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookWithAuthors, 0, page.Size)
	for rows.Next() {
		var b model.BookWithAuthors
		if err := scanBook(rows, &b.Book); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate books: %w", err)
	}

	if len(books) == 0 {
		return books, total, nil
	}

	ids := make([]int64, len(books))
	for i := range books {
		ids[i] = books[i].ID
	}
	authors, err := authorsOf(ctx, r.pool, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range books {
		books[i].Authors = authors[books[i].ID]
	}

	return books, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.BookWithAuthors, error) {
	b, err := getByID(ctx, r.pool, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func getByID(ctx context.Context, q querier, id int64) (*model.BookWithAuthors, error) {
	var b model.BookWithAuthors
	if err := scanBook(q.QueryRow(ctx, `SELECT `+bookColumns+` FROM book WHERE id = $1`, id), &b.Book); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	authors, err := authorsOf(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	b.Authors = authors[id]

	return &b, nil
}

// authorsOf loads the authors of every given book in one query,
// each list in link insertion order
func authorsOf(ctx context.Context, q querier, bookIDs []int64) (map[int64][]model.AuthorOfBook, error) {
	query := `
		SELECT ba.book_id, a.id, a.pseudonym
		FROM book_author ba
		JOIN author a ON a.id = ba.author_id
		WHERE ba.book_id = ANY($1)
		ORDER BY ba.book_id, ba.seq
	`

	rows, err := q.Query(ctx, query, pq.Array(bookIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load authors of books: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.AuthorOfBook, len(bookIDs))
	for rows.Next() {
		var (
			bookID int64
			a      model.AuthorOfBook
		)
		if err := rows.Scan(&bookID, &a.ID, &a.Pseudonym); err != nil {
			return nil, fmt.Errorf("failed to scan author of book: %w", err)
		}
		result[bookID] = append(result[bookID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors of books: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM book WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByIsbn13(ctx context.Context, isbn13 string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM book WHERE isbn_13 = $1)`, isbn13).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check isbn13: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistingAuthorIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM author WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate author ids: %w", err)
	}

	return found, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book, authorIDs []int64) (*model.BookWithAuthors, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.BookWithAuthors, error) {
		query := `
			INSERT INTO book (title, subtitle, total_pages, publisher, published_date, isbn_13, isbn_10)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		var id int64
		err := tx.QueryRow(ctx, query,
			b.Title, b.Subtitle, b.TotalPages, b.Publisher, b.PublishedDate, b.Isbn13, b.Isbn10,
		).Scan(&id)
		if err != nil {
			return nil, err
		}

		if err := linkAuthors(ctx, tx, id, authorIDs); err != nil {
			return nil, err
		}
		return getByID(ctx, tx, id)
	})
	if err != nil {
		return nil, translateWriteError("create", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book, authorIDs []int64) (*model.BookWithAuthors, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.BookWithAuthors, error) {
		query := `
			UPDATE book
			SET title = $2, subtitle = $3, total_pages = $4, publisher = $5,
			    published_date = $6, isbn_13 = $7, isbn_10 = $8
			WHERE id = $1
		`
		tag, err := tx.Exec(ctx, query,
			b.ID, b.Title, b.Subtitle, b.TotalPages, b.Publisher, b.PublishedDate, b.Isbn13, b.Isbn10,
		)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			// deleted between the existence check and the update
			return nil, model.ErrBookDoesNotExist
		}

		// full replace of the author list, not a merge
		if _, err := tx.Exec(ctx, `DELETE FROM book_author WHERE book_id = $1`, b.ID); err != nil {
			return nil, err
		}
		if err := linkAuthors(ctx, tx, b.ID, authorIDs); err != nil {
			return nil, err
		}
		return getByID(ctx, tx, b.ID)
	})
	if err != nil {
		return nil, translateWriteError("update", err)
	}

	return updated, nil
}

// linkAuthors inserts one link per author; seq keeps the given order
func linkAuthors(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) error {
	batch := &pgx.Batch{}
	for _, authorID := range authorIDs {
		batch.Queue(`INSERT INTO book_author (book_id, author_id) VALUES ($1, $2)`, bookID, authorID)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM book WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug().Int64("book_id", id).Msg("Delete of absent book ignored")
	}
	return nil
}

// translateWriteError maps constraint violations raised inside a write
// transaction to domain errors
func translateWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == model.Isbn13Constraint:
			return model.ErrBookAlreadyExists
		case pgErr.Code == "23503" && pgErr.ConstraintName == model.BookAuthorFKConstraint:
			// an author vanished after the references were resolved
			return model.AuthorsNotFound(nil)
		}
	}
	if errors.Is(err, model.ErrBookDoesNotExist) {
		return err
	}
	return fmt.Errorf("failed to %s book: %w", op, err)
}
