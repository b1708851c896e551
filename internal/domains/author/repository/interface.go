package repository

import (
	"context"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/pagination"
)

// RepositoryInterface - author data access
type RepositoryInterface interface {
	// FindAll returns one page of authors with their books and the total author count
	FindAll(ctx context.Context, page pagination.PageRequest) ([]model.AuthorWithBooks, int64, error)
	// GetByID returns ErrAuthorNotFound when absent
	GetByID(ctx context.Context, id int64) (*model.AuthorWithBooks, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// ExistsByPseudonym backs the duplicate check before an insert
	ExistsByPseudonym(ctx context.Context, pseudonym string) (bool, error)
	// Create returns ErrAuthorAlreadyExists on a pseudonym clash
	Create(ctx context.Context, author *model.Author) (*model.Author, error)
	// Update overwrites the scalar fields; book links are untouched
	Update(ctx context.Context, author *model.Author) (*model.Author, error)
	// Delete is a no-op for an absent id
	Delete(ctx context.Context, id int64) error
}
