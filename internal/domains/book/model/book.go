package model

import "time"

// Book is the stored book row
type Book struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Subtitle      *string   `db:"subtitle"`
	TotalPages    int       `db:"total_pages"`
	Publisher     string    `db:"publisher"`
	PublishedDate time.Time `db:"published_date"`
	Isbn13        string    `db:"isbn_13"`
	Isbn10        *string   `db:"isbn_10"`
}

// AuthorOfBook is the reference to an author linked to a book
type AuthorOfBook struct {
	ID        int64  `db:"id"`
	Pseudonym string `db:"pseudonym"`
}

// BookWithAuthors is a book together with its authors in link order
type BookWithAuthors struct {
	Book
	Authors []AuthorOfBook
}

// SortColumns maps the sortable wire fields to book columns
var SortColumns = map[string]string{
	"id":            "id",
	"title":         "title",
	"subtitle":      "subtitle",
	"totalPages":    "total_pages",
	"publisher":     "publisher",
	"publishedDate": "published_date",
	"isbn13":        "isbn_13",
	"isbn10":        "isbn_10",
}
