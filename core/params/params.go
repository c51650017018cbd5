package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 20
	maxPageSize       = 100
)

// QueryParams carries the common pagination parameters of list endpoints.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext parses page/page_size query parameters with defaults.
func FromContext(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: defaultPageNumber,
		PageSize:   defaultPageSize,
	}

	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PageNumber = n
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PageSize = n
		}
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// Offset returns the row offset for the current page.
func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// TotalPages computes the number of pages for a total item count.
func (p QueryParams) TotalPages(totalItems int) int {
	if p.PageSize == 0 {
		return 0
	}
	pages := totalItems / p.PageSize
	if totalItems%p.PageSize != 0 {
		pages++
	}
	return pages
}
