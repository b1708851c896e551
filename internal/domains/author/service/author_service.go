package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/shared/pagination"
)

// authorService implements ServiceInterface on top of the author store
type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates the author service.
// It depends on the repository interface so tests can pass a mock.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

// FindAll returns one page of authors with their books
func (s *authorService) FindAll(ctx context.Context, page pagination.PageRequest) ([]model.AuthorFindResponse, *pagination.PageMetadata, error) {
	authors, total, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, nil, err
	}

	result := make([]model.AuthorFindResponse, len(authors))
	for i := range authors {
		result[i] = *authors[i].ToFindResponse()
	}

	return result, pagination.NewPageMetadata(page, len(result), total), nil
}

// FindByID returns ErrAuthorNotFound for an unknown id
func (s *authorService) FindByID(ctx context.Context, id int64) (*model.AuthorFindResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToFindResponse(), nil
}

// Save rejects a taken pseudonym before writing; a concurrent insert that
// wins the race is still caught by the unique constraint in the repository
func (s *authorService) Save(ctx context.Context, req *model.AuthorSaveRequest) (*model.AuthorSaveResponse, error) {
	exists, err := s.repo.ExistsByPseudonym(ctx, req.Pseudonym)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAuthorAlreadyExists
	}

	created, err := s.repo.Create(ctx, req.ToEntity(0))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Str("pseudonym", created.Pseudonym).Msg("Author saved")
	return created.ToSaveResponse(), nil
}

// Update overwrites names and pseudonym of an existing author.
// Book links are left as they are.
func (s *authorService) Update(ctx context.Context, id int64, req *model.AuthorSaveRequest) (*model.AuthorSaveResponse, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrAuthorDoesNotExist
	}

	updated, err := s.repo.Update(ctx, req.ToEntity(id))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", id).Msg("Author updated")
	return updated.ToSaveResponse(), nil
}

// DeleteByID removes the author and its book links; unknown ids are ignored
func (s *authorService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("Author deleted")
	return nil
}
