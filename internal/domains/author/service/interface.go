package service

import (
	"context"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/pagination"
)

// ServiceInterface - author business operations
type ServiceInterface interface {
	// FindAll pages authors using the whitelisted sort fields
	FindAll(ctx context.Context, page pagination.PageRequest) ([]model.AuthorFindResponse, *pagination.PageMetadata, error)
	// FindByID returns ErrAuthorNotFound when absent
	FindByID(ctx context.Context, id int64) (*model.AuthorFindResponse, error)
	// Save creates a author; ErrAuthorAlreadyExists on a uniqueness clash
	Save(ctx context.Context, req *model.AuthorSaveRequest) (*model.AuthorSaveResponse, error)
	// Update returns ErrAuthorDoesNotExist when absent
	Update(ctx context.Context, id int64, req *model.AuthorSaveRequest) (*model.AuthorSaveResponse, error)
	// DeleteByID is idempotent
	DeleteByID(ctx context.Context, id int64) error
}
