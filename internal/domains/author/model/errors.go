package model

import "catalog-backend/internal/shared/apperr"

var (
	ErrAuthorNotFound      = apperr.New(apperr.ErrNotFound, "Author not found!")
	ErrAuthorDoesNotExist  = apperr.New(apperr.ErrNotFound, "Author does not exist!")
	ErrAuthorAlreadyExists = apperr.New(apperr.ErrAlreadyExists, "Author already exists!")
)

// PseudonymConstraint is the unique constraint behind ErrAuthorAlreadyExists
const PseudonymConstraint = "author_pseudonym_key"
