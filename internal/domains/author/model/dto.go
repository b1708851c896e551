package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 100
)

var notBlank = validation.Match(regexp.MustCompile(`\S`)).Error("must not be blank")

// AuthorSaveRequest - POST /api/v1/author/save, PUT /api/v1/author/update/:id
type AuthorSaveRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	MiddleName *string `json:"middleName"`
	LastName   string  `json:"lastName" binding:"required"`
	Pseudonym  string  `json:"pseudonym" binding:"required"`
}

func (req AuthorSaveRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.FirstName, validation.Required, notBlank, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&req.MiddleName, validation.NilOrNotEmpty, notBlank, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&req.LastName, validation.Required, notBlank, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&req.Pseudonym, validation.Required, notBlank, validation.RuneLength(1, MaxNameLength)),
	)
}

// ToEntity builds an Author from the request, keeping the given id
func (req *AuthorSaveRequest) ToEntity(id int64) *Author {
	return &Author{
		ID:         id,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Pseudonym:  req.Pseudonym,
	}
}

// AuthorSaveResponse - returned by save and update
type AuthorSaveResponse struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   string  `json:"lastName"`
	Pseudonym  string  `json:"pseudonym"`
}

// BookOfAuthorResponse - one entry of AuthorFindResponse.Books
type BookOfAuthorResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Subtitle  *string `json:"subtitle"`
	Publisher string  `json:"publisher"`
	Isbn13    string  `json:"isbn13"`
}

// AuthorFindResponse - returned by find and findAll
type AuthorFindResponse struct {
	ID         int64                  `json:"id"`
	FirstName  string                 `json:"firstName"`
	MiddleName *string                `json:"middleName"`
	LastName   string                 `json:"lastName"`
	Pseudonym  string                 `json:"pseudonym"`
	Books      []BookOfAuthorResponse `json:"books"`
}

// Conversion methods

func (a *Author) ToSaveResponse() *AuthorSaveResponse {
	return &AuthorSaveResponse{
		ID:         a.ID,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		Pseudonym:  a.Pseudonym,
	}
}

// ToFindResponse always renders books as a list, never null
func (a *AuthorWithBooks) ToFindResponse() *AuthorFindResponse {
	books := make([]BookOfAuthorResponse, len(a.Books))
	for i, b := range a.Books {
		books[i] = BookOfAuthorResponse{
			ID:        b.ID,
			Title:     b.Title,
			Subtitle:  b.Subtitle,
			Publisher: b.Publisher,
			Isbn13:    b.Isbn13,
		}
	}

	return &AuthorFindResponse{
		ID:         a.ID,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		Pseudonym:  a.Pseudonym,
		Books:      books,
	}
}
