package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/shared/pagination"
	"catalog-backend/internal/shared/utils"
)

// bookService implements ServiceInterface on top of the book store
type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService creates the book service.
// It depends on the repository interface so tests can pass a mock.
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

// FindAll returns one page of books with their authors
func (s *bookService) FindAll(ctx context.Context, page pagination.PageRequest) ([]model.BookResponse, *pagination.PageMetadata, error) {
	books, total, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, nil, err
	}

	result := make([]model.BookResponse, len(books))
	for i := range books {
		result[i] = *books[i].ToResponse()
	}

	return result, pagination.NewPageMetadata(page, len(result), total), nil
}

// FindByID returns ErrBookNotFound for an unknown id
func (s *bookService) FindByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.ToResponse(), nil
}

// Save rejects a taken isbn13 or an unknown author before writing
func (s *bookService) Save(ctx context.Context, req *model.BookSaveRequest) (*model.BookResponse, error) {
	exists, err := s.repo.ExistsByIsbn13(ctx, req.Isbn13)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrBookAlreadyExists
	}

	authorIDs, err := s.resolveAuthors(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(0), authorIDs)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", created.ID).Str("isbn13", created.Isbn13).Msg("Book saved")
	return created.ToResponse(), nil
}

// Update replaces every field and the author list of an existing book
func (s *bookService) Update(ctx context.Context, id int64, req *model.BookSaveRequest) (*model.BookResponse, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrBookDoesNotExist
	}

	authorIDs, err := s.resolveAuthors(ctx, req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, req.ToEntity(id), authorIDs)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", id).Ints64("author_ids", authorIDs).Msg("Book updated")
	return updated.ToResponse(), nil
}

// resolveAuthors checks that every referenced author exists.
// References resolve by id only; a supplied pseudonym is ignored.
func (s *bookService) resolveAuthors(ctx context.Context, req *model.BookSaveRequest) ([]int64, error) {
	ids := req.AuthorIDs()

	found, err := s.repo.ExistingAuthorIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if missing := utils.MissingIDs(ids, found); len(missing) > 0 {
		return nil, model.AuthorsNotFound(missing)
	}

	return ids, nil
}

// DeleteByID removes the book and its links; authors stay
func (s *bookService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("book_id", id).Msg("Book deleted")
	return nil
}
