package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{rbac.RoleSuperAdmin, "plan", "create", true},
		{rbac.RoleAdmin, "plan", "create", false},
		{rbac.RoleAdmin, "subscription", "create", true},
		{rbac.RoleHRManager, "subscription", "create", false},
		{rbac.RoleHRManager, "payroll", "process", true},
		{rbac.RoleHRStaff, "payroll", "process", false},
		{rbac.RoleHRStaff, "employee", "create", true},
		{rbac.RoleHRStaff, "employee", "delete", false},
		{rbac.RoleEmployee, "attendance", "list", false},
		{rbac.RoleHRManager, "leave_request", "decide", true},
		{rbac.RoleEmployee, "leave_request", "decide", false},
		{"UNKNOWN_ROLE", "employee", "create", false},
	}

	for _, tc := range cases {
		got, err := svc.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}

func performAuthorized(t *testing.T, svc rbac.Service, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/payrolls",
		func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
		},
		rbac.Authorize(svc, "payroll", "read"),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/payrolls", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorize(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	t.Run("allowed role passes through", func(t *testing.T) {
		w := performAuthorized(t, svc, rbac.RoleHRManager)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied role gets forbidden", func(t *testing.T) {
		w := performAuthorized(t, svc, rbac.RoleEmployee)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role gets unauthorized", func(t *testing.T) {
		w := performAuthorized(t, svc, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
