package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/pagination"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindAll(ctx context.Context, page pagination.PageRequest) ([]model.AuthorWithBooks, int64, error) {
	args := m.Called(ctx, page)
	authors, _ := args.Get(0).([]model.AuthorWithBooks)
	return authors, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*model.AuthorWithBooks, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.AuthorWithBooks)
	return a, args.Error(1)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ExistsByPseudonym(ctx context.Context, pseudonym string) (bool, error) {
	args := m.Called(ctx, pseudonym)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	created, _ := args.Get(0).(*model.Author)
	return created, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	updated, _ := args.Get(0).(*model.Author)
	return updated, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func saveRequest() *model.AuthorSaveRequest {
	return &model.AuthorSaveRequest{FirstName: "Terry", LastName: "Pratchett", Pseudonym: "tpratchett"}
}

func TestAuthorService_Save(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("ExistsByPseudonym", ctx, "tpratchett").Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(a *model.Author) bool {
		return a.ID == 0 && a.Pseudonym == "tpratchett" && a.MiddleName == nil
	})).Return(&model.Author{ID: 7, FirstName: "Terry", LastName: "Pratchett", Pseudonym: "tpratchett"}, nil)

	resp, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "tpratchett", resp.Pseudonym)
	repo.AssertExpectations(t)
}

func TestAuthorService_SaveDuplicatePseudonymWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("ExistsByPseudonym", ctx, "tpratchett").Return(true, nil)

	_, err := svc.Save(ctx, saveRequest())
	assert.ErrorIs(t, err, model.ErrAuthorAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthorService_SaveLosesRaceToConstraint(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("ExistsByPseudonym", ctx, "tpratchett").Return(false, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil, model.ErrAuthorAlreadyExists)

	_, err := svc.Save(ctx, saveRequest())
	assert.ErrorIs(t, err, model.ErrAuthorAlreadyExists)
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("ExistsByID", ctx, int64(3)).Return(true, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(a *model.Author) bool { return a.ID == 3 })).
		Return(&model.Author{ID: 3, FirstName: "Terry", LastName: "Pratchett", Pseudonym: "tpratchett"}, nil)

	resp, err := svc.Update(ctx, 3, saveRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	repo.AssertExpectations(t)
}

func TestAuthorService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("ExistsByID", ctx, int64(3)).Return(false, nil)

	_, err := svc.Update(ctx, 3, saveRequest())
	assert.ErrorIs(t, err, model.ErrAuthorDoesNotExist)
	assert.Equal(t, "Author does not exist!", err.Error())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthorService_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("GetByID", ctx, int64(1)).Return(&model.AuthorWithBooks{
		Author: model.Author{ID: 1, FirstName: "A", LastName: "B", Pseudonym: "ab"},
		Books:  []model.BookOfAuthor{{ID: 10, Title: "T", Publisher: "P", Isbn13: "9780000000001"}},
	}, nil)
	repo.On("GetByID", ctx, int64(2)).Return(nil, model.ErrAuthorNotFound)

	resp, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, resp.Books, 1)
	assert.Equal(t, int64(10), resp.Books[0].ID)

	_, err = svc.FindByID(ctx, 2)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	assert.Equal(t, "Author not found!", err.Error())
}

func TestAuthorService_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	page := pagination.PageRequest{Page: 1, Size: 2}
	repo.On("FindAll", ctx, page).Return([]model.AuthorWithBooks{
		{Author: model.Author{ID: 3, Pseudonym: "c"}},
		{Author: model.Author{ID: 4, Pseudonym: "d"}},
	}, int64(5), nil)

	authors, meta, err := svc.FindAll(ctx, page)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.NotNil(t, authors[0].Books)
	assert.Equal(t, &pagination.PageMetadata{
		PageNumber: 1, PageSize: 2, NumberOfElements: 2, TotalPages: 3, TotalElements: 5,
	}, meta)
}

func TestAuthorService_FindAllEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	page := pagination.PageRequest{Page: 0, Size: 5}
	repo.On("FindAll", ctx, page).Return([]model.AuthorWithBooks{}, int64(0), nil)

	authors, meta, err := svc.FindAll(ctx, page)
	require.NoError(t, err)
	assert.Empty(t, authors)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 0, meta.NumberOfElements)
}

func TestAuthorService_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("Delete", ctx, int64(9)).Return(nil).Once()
	assert.NoError(t, svc.DeleteByID(ctx, 9))

	boom := errors.New("connection reset")
	repo.On("Delete", ctx, int64(10)).Return(boom)
	assert.ErrorIs(t, svc.DeleteByID(ctx, 10), boom)
}
