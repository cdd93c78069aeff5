package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Params are the list-endpoint query parameters shared by every collection
// route: page (>=1), limit (1-100), free-text search, and sorting.
type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// FromQuery parses the shared pagination parameters, clamping out-of-range
// values to their defaults instead of rejecting the request.
func FromQuery(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sortOrder := strings.ToLower(c.DefaultQuery("sortOrder", "desc"))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return Params{
		Page:      page,
		Limit:     limit,
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    strings.TrimSpace(c.Query("sortBy")),
		SortOrder: sortOrder,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Order resolves the ORDER BY clause against a whitelist of sortable columns.
// Unknown or empty sortBy falls back to the given default column.
func (p Params) Order(sortable map[string]string, defaultColumn string) string {
	column := defaultColumn
	if mapped, ok := sortable[p.SortBy]; ok {
		column = mapped
	}
	return column + " " + strings.ToUpper(p.SortOrder)
}
