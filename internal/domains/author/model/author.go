package model

// Author is the stored author row
type Author struct {
	ID         int64   `db:"id"`
	FirstName  string  `db:"first_name"`
	MiddleName *string `db:"middle_name"`
	LastName   string  `db:"last_name"`
	Pseudonym  string  `db:"pseudonym"`
}

// BookOfAuthor is the summary of a book linked to an author
type BookOfAuthor struct {
	ID        int64   `db:"id"`
	Title     string  `db:"title"`
	Subtitle  *string `db:"subtitle"`
	Publisher string  `db:"publisher"`
	Isbn13    string  `db:"isbn_13"`
}

// AuthorWithBooks is an author together with its linked books in link order
type AuthorWithBooks struct {
	Author
	Books []BookOfAuthor
}

// SortColumns maps the sortable wire fields to author columns
var SortColumns = map[string]string{
	"id":         "id",
	"firstName":  "first_name",
	"middleName": "middle_name",
	"lastName":   "last_name",
	"pseudonym":  "pseudonym",
}
