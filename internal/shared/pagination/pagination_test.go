package pagination_test

import (
	"net/http/httptest"
	"testing"

	"hrms/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromQuery_Defaults(t *testing.T) {
	p := pagination.FromQuery(queryContext(t, ""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Empty(t, p.Search)
}

func TestFromQuery_ClampsOutOfRangeValues(t *testing.T) {
	p := pagination.FromQuery(queryContext(t, "page=-3&limit=5000"))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
}

func TestFromQuery_IgnoresGarbage(t *testing.T) {
	p := pagination.FromQuery(queryContext(t, "page=abc&limit=xyz&sortOrder=sideways"))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestFromQuery_TrimsSearch(t *testing.T) {
	p := pagination.FromQuery(queryContext(t, "search=++jane++&sortBy=name&sortOrder=ASC"))

	assert.Equal(t, "jane", p.Search)
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
}

func TestParams_Order(t *testing.T) {
	sortable := map[string]string{"createdAt": "created_at", "name": "name"}

	p := pagination.Params{SortBy: "createdAt", SortOrder: "asc"}
	assert.Equal(t, "created_at ASC", p.Order(sortable, "id"))

	p = pagination.Params{SortBy: "drop table", SortOrder: "desc"}
	assert.Equal(t, "id DESC", p.Order(sortable, "id"))
}
