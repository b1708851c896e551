package repository

import (
	"context"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/pagination"
)

// RepositoryInterface - book data access
type RepositoryInterface interface {
	// FindAll returns one page of books with their authors and the total book count
	FindAll(ctx context.Context, page pagination.PageRequest) ([]model.BookWithAuthors, int64, error)
	// GetByID returns ErrBookNotFound when absent
	GetByID(ctx context.Context, id int64) (*model.BookWithAuthors, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// ExistsByIsbn13 backs the duplicate check before an insert
	ExistsByIsbn13(ctx context.Context, isbn13 string) (bool, error)
	// ExistingAuthorIDs reports which of ids belong to stored authors
	ExistingAuthorIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	// Create stores the book and links authorIDs in order, in one transaction
	Create(ctx context.Context, book *model.Book, authorIDs []int64) (*model.BookWithAuthors, error)
	// Update replaces every field and the whole author list, in one transaction
	Update(ctx context.Context, book *model.Book, authorIDs []int64) (*model.BookWithAuthors, error)
	// Delete is a no-op for an absent id; links go with the book
	Delete(ctx context.Context, id int64) error
}
