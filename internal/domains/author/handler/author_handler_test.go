package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/pagination"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockService struct {
	mock.Mock
}

func (m *mockService) FindAll(ctx context.Context, page pagination.PageRequest) ([]model.AuthorFindResponse, *pagination.PageMetadata, error) {
	args := m.Called(ctx, page)
	authors, _ := args.Get(0).([]model.AuthorFindResponse)
	meta, _ := args.Get(1).(*pagination.PageMetadata)
	return authors, meta, args.Error(2)
}

func (m *mockService) FindByID(ctx context.Context, id int64) (*model.AuthorFindResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*model.AuthorFindResponse)
	return resp, args.Error(1)
}

func (m *mockService) Save(ctx context.Context, req *model.AuthorSaveRequest) (*model.AuthorSaveResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*model.AuthorSaveResponse)
	return resp, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *model.AuthorSaveRequest) (*model.AuthorSaveResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*model.AuthorSaveResponse)
	return resp, args.Error(1)
}

func (m *mockService) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setup() (*gin.Engine, *mockService) {
	svc := new(mockService)
	r := gin.New()
	NewAuthorHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, svc
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

const validBody = `{"firstName":"Neil","lastName":"Gaiman","pseudonym":"ngaiman"}`

func TestAuthorHandler_Save(t *testing.T) {
	r, svc := setup()
	svc.On("Save", mock.Anything, &model.AuthorSaveRequest{FirstName: "Neil", LastName: "Gaiman", Pseudonym: "ngaiman"}).
		Return(&model.AuthorSaveResponse{ID: 1, FirstName: "Neil", LastName: "Gaiman", Pseudonym: "ngaiman"}, nil)

	code, body := do(t, r, http.MethodPost, "/api/v1/author/save", validBody)

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Saved author!", body["message"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "ngaiman", data[0].(map[string]interface{})["pseudonym"])
	assert.Nil(t, data[0].(map[string]interface{})["middleName"])
}

func TestAuthorHandler_SaveValidation(t *testing.T) {
	r, svc := setup()

	code, body := do(t, r, http.MethodPost, "/api/v1/author/save",
		`{"firstName":"","lastName":"Gaiman","pseudonym":"`+strings.Repeat("p", 101)+`"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "/api/v1/author/save", body["path"])
	metadata := body["metadata"].(map[string]interface{})
	assert.Contains(t, metadata, "firstName")
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthorHandler_SaveMalformedJSON(t *testing.T) {
	r, _ := setup()

	code, body := do(t, r, http.MethodPost, "/api/v1/author/save", `{"firstName":`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, float64(400), body["status"])
}

func TestAuthorHandler_SaveConflict(t *testing.T) {
	r, svc := setup()
	svc.On("Save", mock.Anything, mock.Anything).Return(nil, model.ErrAuthorAlreadyExists)

	code, body := do(t, r, http.MethodPost, "/api/v1/author/save", validBody)

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Author already exists!", body["error"])
}

func TestAuthorHandler_FindByID(t *testing.T) {
	r, svc := setup()
	svc.On("FindByID", mock.Anything, int64(5)).
		Return(&model.AuthorFindResponse{ID: 5, Pseudonym: "x", Books: []model.BookOfAuthorResponse{}}, nil)
	svc.On("FindByID", mock.Anything, int64(6)).Return(nil, model.ErrAuthorNotFound)

	code, body := do(t, r, http.MethodGet, "/api/v1/author/find/5", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Found author!", body["message"])
	assert.Equal(t, []interface{}{}, body["data"].([]interface{})[0].(map[string]interface{})["books"])

	code, body = do(t, r, http.MethodGet, "/api/v1/author/find/6", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Author not found!", body["error"])
}

func TestAuthorHandler_BadID(t *testing.T) {
	r, svc := setup()

	for _, path := range []string{
		"/api/v1/author/find/abc",
		"/api/v1/author/find/0",
		"/api/v1/author/delete/-2",
	} {
		method := http.MethodGet
		if strings.Contains(path, "delete") {
			method = http.MethodDelete
		}
		code, body := do(t, r, method, path, "")
		assert.Equal(t, http.StatusBadRequest, code, path)
		assert.Equal(t, "Invalid id format", body["error"], path)
	}

	code, _ := do(t, r, http.MethodPut, "/api/v1/author/update/x", validBody)
	assert.Equal(t, http.StatusBadRequest, code)

	svc.AssertExpectations(t)
}

func TestAuthorHandler_Update(t *testing.T) {
	r, svc := setup()
	svc.On("Update", mock.Anything, int64(3), mock.Anything).
		Return(&model.AuthorSaveResponse{ID: 3, Pseudonym: "ngaiman"}, nil)
	svc.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, model.ErrAuthorDoesNotExist)

	code, body := do(t, r, http.MethodPut, "/api/v1/author/update/3", validBody)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Updated author!", body["message"])

	code, body = do(t, r, http.MethodPut, "/api/v1/author/update/4", validBody)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Author does not exist!", body["error"])
}

func TestAuthorHandler_Delete(t *testing.T) {
	r, svc := setup()
	svc.On("DeleteByID", mock.Anything, int64(8)).Return(nil)

	code, body := do(t, r, http.MethodDelete, "/api/v1/author/delete/8", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Deleted author!", body["message"])
	assert.Nil(t, body["data"])
}

func TestAuthorHandler_FindAll(t *testing.T) {
	r, svc := setup()
	meta := &pagination.PageMetadata{PageNumber: 1, PageSize: 2, NumberOfElements: 1, TotalPages: 2, TotalElements: 3}
	svc.On("FindAll", mock.Anything, mock.MatchedBy(func(p pagination.PageRequest) bool {
		return p.Page == 1 && p.Size == 2 && p.Sort[0].Column == "last_name" && p.Sort[0].Desc
	})).Return([]model.AuthorFindResponse{{ID: 3}}, meta, nil)

	code, body := do(t, r, http.MethodGet, "/api/v1/author/findAll?page=1&size=2&sort=lastName,desc", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Found authors!", body["message"])
	assert.Len(t, body["data"], 1)
	metadata := body["metadata"].(map[string]interface{})
	assert.Equal(t, float64(2), metadata["totalPages"])
	assert.Equal(t, float64(3), metadata["totalElements"])
}

func TestAuthorHandler_FindAllBadQuery(t *testing.T) {
	r, svc := setup()

	code, body := do(t, r, http.MethodGet, "/api/v1/author/findAll?sort=password", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["metadata"], "sort")
	svc.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestAuthorHandler_InternalErrorIsOpaque(t *testing.T) {
	r, svc := setup()
	svc.On("FindByID", mock.Anything, int64(1)).Return(nil, errors.New("pq: relation does not exist"))

	code, body := do(t, r, http.MethodGet, "/api/v1/author/find/1", "")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["error"])
}
