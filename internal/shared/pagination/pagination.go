package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"catalog-backend/internal/shared/apperr"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 0
	DefaultSize = 5
	MaxSize     = 100

	idColumn = "id"
)

// SortOrder is one ORDER BY term, already mapped to a whitelisted column
type SortOrder struct {
	Field  string
	Column string
	Desc   bool
}

// PageRequest - offset based page of a listing
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// PageMetadata - metadata block of a paginated envelope
type PageMetadata struct {
	PageNumber       int   `json:"pageNumber"`
	PageSize         int   `json:"pageSize"`
	NumberOfElements int   `json:"numberOfElements"`
	TotalPages       int   `json:"totalPages"`
	TotalElements    int64 `json:"totalElements"`
}

// FromQuery reads page, size and sort from the request query string.
// columns maps the wire field names accepted in sort to table columns.
func FromQuery(c *gin.Context, columns map[string]string) (PageRequest, error) {
	return Parse(c.Query("page"), c.Query("size"), c.QueryArray("sort"), columns)
}

// Parse builds a PageRequest from raw query values.
// sort values use the "field" or "field,asc|desc" form.
func Parse(page, size string, sort []string, columns map[string]string) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, Size: DefaultSize}
	details := map[string]string{}

	if page != "" {
		p, err := strconv.Atoi(page)
		switch {
		case err != nil:
			details["page"] = "must be a number"
		case p < 0:
			details["page"] = "must be zero or positive"
		default:
			req.Page = p
		}
	}

	if size != "" {
		s, err := strconv.Atoi(size)
		switch {
		case err != nil:
			details["size"] = "must be a number"
		case s < 1:
			details["size"] = "must be positive"
		case s > MaxSize:
			req.Size = MaxSize
		default:
			req.Size = s
		}
	}

	// page*size becomes the SQL OFFSET and must not wrap
	if _, bad := details["page"]; !bad && req.Page > math.MaxInt/req.Size {
		details["page"] = "is too large"
	}

	for _, raw := range sort {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		order, err := parseSortOrder(raw, columns)
		if err != nil {
			details["sort"] = err.Error()
			break
		}
		req.Sort = append(req.Sort, order)
	}

	if len(details) > 0 {
		return PageRequest{}, apperr.Validation("Invalid pagination parameters", details)
	}
	if len(req.Sort) == 0 {
		req.Sort = []SortOrder{{Field: idColumn, Column: idColumn}}
	}
	return req, nil
}

func parseSortOrder(raw string, columns map[string]string) (SortOrder, error) {
	parts := strings.Split(raw, ",")
	field := strings.TrimSpace(parts[0])

	column, ok := columns[field]
	if !ok {
		return SortOrder{}, fmt.Errorf("unknown sort field %q", field)
	}

	order := SortOrder{Field: field, Column: column}
	if len(parts) > 1 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc", "":
		case "desc":
			order.Desc = true
		default:
			return SortOrder{}, fmt.Errorf("unknown sort direction %q", parts[1])
		}
	}
	if len(parts) > 2 {
		return SortOrder{}, fmt.Errorf("malformed sort %q", raw)
	}
	return order, nil
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// OrderBy renders the ORDER BY clause with id as the final tie-break.
// Columns come from the whitelist only, never from raw input.
func (p PageRequest) OrderBy() string {
	terms := make([]string, 0, len(p.Sort)+1)
	hasID := false
	for _, s := range p.Sort {
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		terms = append(terms, s.Column+" "+dir)
		if s.Column == idColumn {
			hasID = true
		}
	}
	if !hasID {
		terms = append(terms, idColumn+" ASC")
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

// NewPageMetadata computes the metadata for a fetched page
func NewPageMetadata(req PageRequest, numberOfElements int, totalElements int64) *PageMetadata {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((totalElements + int64(req.Size) - 1) / int64(req.Size))
	}
	return &PageMetadata{
		PageNumber:       req.Page,
		PageSize:         req.Size,
		NumberOfElements: numberOfElements,
		TotalPages:       totalPages,
		TotalElements:    totalElements,
	}
}
