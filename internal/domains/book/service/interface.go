package service

import (
	"context"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/pagination"
)

// ServiceInterface - book business operations
type ServiceInterface interface {
	// FindAll pages books using the whitelisted sort fields
	FindAll(ctx context.Context, page pagination.PageRequest) ([]model.BookResponse, *pagination.PageMetadata, error)
	// FindByID returns ErrBookNotFound when absent
	FindByID(ctx context.Context, id int64) (*model.BookResponse, error)
	// Save creates a book; ErrBookAlreadyExists on a uniqueness clash
	Save(ctx context.Context, req *model.BookSaveRequest) (*model.BookResponse, error)
	// Update returns ErrBookDoesNotExist when absent
	Update(ctx context.Context, id int64, req *model.BookSaveRequest) (*model.BookResponse, error)
	// DeleteByID is idempotent
	DeleteByID(ctx context.Context, id int64) error
}
