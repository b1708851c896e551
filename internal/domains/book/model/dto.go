package model

import (
	"math"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/utils"
)

const (
	MaxTitleLength     = 255
	MaxPublisherLength = 50
	MaxPseudonymLength = 100
	Isbn13Length       = 13
	Isbn10Length       = 10
)

var notBlank = validation.Match(regexp.MustCompile(`\S`)).Error("must not be blank")

// AuthorOfBookRequest references an existing author by id.
// Pseudonym is accepted for compatibility and never stored.
type AuthorOfBookRequest struct {
	ID        int64   `json:"id" binding:"required"`
	Pseudonym *string `json:"pseudonym"`
}

func (r AuthorOfBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Pseudonym, validation.RuneLength(0, MaxPseudonymLength)),
	)
}

// BookSaveRequest - POST /api/v1/book/save, PUT /api/v1/book/update/:id
type BookSaveRequest struct {
	Title         string                `json:"title" binding:"required"`
	Subtitle      *string               `json:"subtitle"`
	Authors       []AuthorOfBookRequest `json:"authors" binding:"required,dive"`
	TotalPages    int                   `json:"totalPages" binding:"required"`
	Publisher     string                `json:"publisher" binding:"required"`
	PublishedDate *shared.Date          `json:"publishedDate" binding:"required"`
	Isbn13        string                `json:"isbn13" binding:"required"`
	Isbn10        *string               `json:"isbn10"`
}

func (req BookSaveRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, notBlank, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&req.Subtitle, validation.NilOrNotEmpty, notBlank, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&req.Authors, validation.Required),
		validation.Field(&req.TotalPages, validation.Required, validation.Min(1), validation.Max(math.MaxInt32)),
		validation.Field(&req.Publisher, validation.Required, notBlank, validation.RuneLength(1, MaxPublisherLength)),
		validation.Field(&req.PublishedDate, validation.Required),
		validation.Field(&req.Isbn13, validation.Required, validation.RuneLength(Isbn13Length, Isbn13Length)),
		validation.Field(&req.Isbn10, validation.NilOrNotEmpty, validation.RuneLength(Isbn10Length, Isbn10Length)),
	)
}

// AuthorIDs returns the referenced author ids in request order without repeats
func (req *BookSaveRequest) AuthorIDs() []int64 {
	ids := make([]int64, len(req.Authors))
	for i, a := range req.Authors {
		ids[i] = a.ID
	}
	return utils.DistinctIDs(ids)
}

// ToEntity builds a Book from the request, keeping the given id
func (req *BookSaveRequest) ToEntity(id int64) *Book {
	b := &Book{
		ID:         id,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		TotalPages: req.TotalPages,
		Publisher:  req.Publisher,
		Isbn13:     req.Isbn13,
		Isbn10:     req.Isbn10,
	}
	if req.PublishedDate != nil {
		b.PublishedDate = req.PublishedDate.Time
	}
	return b
}

// AuthorOfBookResponse - one entry of BookResponse.Authors
type AuthorOfBookResponse struct {
	ID        int64  `json:"id"`
	Pseudonym string `json:"pseudonym"`
}

// BookResponse - returned by every book endpoint
type BookResponse struct {
	ID            int64                  `json:"id"`
	Title         string                 `json:"title"`
	Subtitle      *string                `json:"subtitle"`
	Authors       []AuthorOfBookResponse `json:"authors"`
	TotalPages    int                    `json:"totalPages"`
	Publisher     string                 `json:"publisher"`
	PublishedDate shared.Date            `json:"publishedDate"`
	Isbn13        string                 `json:"isbn13"`
	Isbn10        *string                `json:"isbn10"`
}

// ToResponse always renders authors as a list, never null
func (b *BookWithAuthors) ToResponse() *BookResponse {
	authors := make([]AuthorOfBookResponse, len(b.Authors))
	for i, a := range b.Authors {
		authors[i] = AuthorOfBookResponse{ID: a.ID, Pseudonym: a.Pseudonym}
	}

	return &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Subtitle:      b.Subtitle,
		Authors:       authors,
		TotalPages:    b.TotalPages,
		Publisher:     b.Publisher,
		PublishedDate: shared.NewDate(b.PublishedDate),
		Isbn13:        b.Isbn13,
		Isbn10:        b.Isbn10,
	}
}
