package model

import (
	"strconv"
	"strings"

	"catalog-backend/internal/shared/apperr"
)

var (
	ErrBookNotFound      = apperr.New(apperr.ErrNotFound, "Book not found!")
	ErrBookDoesNotExist  = apperr.New(apperr.ErrNotFound, "Book does not exist!")
	ErrBookAlreadyExists = apperr.New(apperr.ErrAlreadyExists, "Book already exists!")
)

const (
	Isbn13Constraint       = "book_isbn_13_key"
	BookAuthorFKConstraint = "book_author_author_id_fkey"
)

// AuthorsNotFound reports author references that resolve to no author.
// ids may be empty when the missing ids are unknown.
func AuthorsNotFound(ids []int64) *apperr.Error {
	if len(ids) == 0 {
		return apperr.Validation("Author not found!", map[string]string{"authors": "references an unknown author"})
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	list := strings.Join(parts, ", ")

	return apperr.Validation("Author not found: "+list, map[string]string{"authors": "unknown author ids: " + list})
}
