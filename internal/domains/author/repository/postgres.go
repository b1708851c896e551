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

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/pagination"
)

const authorColumns = `id, first_name, middle_name, last_name, pseudonym`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the author store on the shared pool
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindAll(ctx context.Context, page pagination.PageRequest) ([]model.AuthorWithBooks, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM author`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	// OrderBy only renders whitelisted columns
	query := `SELECT ` + authorColumns + ` FROM author ` + page.OrderBy() + ` LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.AuthorWithBooks, 0, page.Size)
	for rows.Next() {
		var a model.AuthorWithBooks
		if err := rows.Scan(&a.ID, &a.FirstName, &a.MiddleName, &a.LastName, &a.Pseudonym); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate authors: %w", err)
	}

	if len(authors) == 0 {
		return authors, total, nil
	}

	ids := make([]int64, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}
	books, err := r.booksOf(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range authors {
		authors[i].Books = books[authors[i].ID]
	}

	return authors, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.AuthorWithBooks, error) {
	query := `SELECT ` + authorColumns + ` FROM author WHERE id = $1`

	var a model.AuthorWithBooks
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.MiddleName, &a.LastName, &a.Pseudonym)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	books, err := r.booksOf(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	a.Books = books[id]

	return &a, nil
}

// booksOf loads the linked books of every given author in one query,
// each list in link insertion order
func (r *postgresRepository) booksOf(ctx context.Context, authorIDs []int64) (map[int64][]model.BookOfAuthor, error) {
	query := `
		SELECT ba.author_id, b.id, b.title, b.subtitle, b.publisher, b.isbn_13
		FROM book_author ba
		JOIN book b ON b.id = ba.book_id
		WHERE ba.author_id = ANY($1)
		ORDER BY ba.author_id, ba.seq
	`

	rows, err := r.pool.Query(ctx, query, pq.Array(authorIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load books of authors: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.BookOfAuthor, len(authorIDs))
	for rows.Next() {
		var (
			authorID int64
			b        model.BookOfAuthor
		)
		if err := rows.Scan(&authorID, &b.ID, &b.Title, &b.Subtitle, &b.Publisher, &b.Isbn13); err != nil {
			return nil, fmt.Errorf("failed to scan book of author: %w", err)
		}
		result[authorID] = append(result[authorID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books of authors: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM author WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByPseudonym(ctx context.Context, pseudonym string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM author WHERE pseudonym = $1)`, pseudonym).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pseudonym: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
		INSERT INTO author (first_name, middle_name, last_name, pseudonym)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + authorColumns

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.FirstName, a.MiddleName, a.LastName, a.Pseudonym).
		Scan(&created.ID, &created.FirstName, &created.MiddleName, &created.LastName, &created.Pseudonym)
	if err != nil {
		if isPseudonymViolation(err) {
			return nil, model.ErrAuthorAlreadyExists
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
		UPDATE author
		SET first_name = $2, middle_name = $3, last_name = $4, pseudonym = $5
		WHERE id = $1
		RETURNING ` + authorColumns

	var updated model.Author
	err := r.pool.QueryRow(ctx, query, a.ID, a.FirstName, a.MiddleName, a.LastName, a.Pseudonym).
		Scan(&updated.ID, &updated.FirstName, &updated.MiddleName, &updated.LastName, &updated.Pseudonym)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// deleted between the existence check and the update
			return nil, model.ErrAuthorDoesNotExist
		}
		if isPseudonymViolation(err) {
			return nil, model.ErrAuthorAlreadyExists
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM author WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug().Int64("author_id", id).Msg("Delete of absent author ignored")
	}
	return nil
}

func isPseudonymViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == model.PseudonymConstraint
}
