package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Platform roles. SUPER_ADMIN operates across tenants; the rest are scoped to
// one organization by the auth middleware.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleHRManager  = "HR_MANAGER"
	RoleHRStaff    = "HR_STAFF"
	RoleEmployee   = "EMPLOYEE"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies is the static role allow-list per resource:action. Routes not
// listed for a role are denied for it.
var policies = [][]string{
	// organizations (platform scope)
	{RoleSuperAdmin, "organization", "create"},
	{RoleSuperAdmin, "organization", "list"},
	{RoleSuperAdmin, "organization", "read"},
	{RoleAdmin, "organization", "read"},
	{RoleSuperAdmin, "organization", "update"},
	{RoleAdmin, "organization", "update"},
	{RoleSuperAdmin, "organization", "delete"},
	{RoleSuperAdmin, "organization", "toggle_active"},

	// plans (platform catalog)
	{RoleSuperAdmin, "plan", "create"},
	{RoleSuperAdmin, "plan", "list"},
	{RoleSuperAdmin, "plan", "update"},
	{RoleSuperAdmin, "plan", "delete"},

	// subscriptions
	{RoleAdmin, "subscription", "create"},
	{RoleSuperAdmin, "subscription", "list"},
	{RoleAdmin, "subscription", "read"},
	{RoleHRManager, "subscription", "read"},
	{RoleAdmin, "subscription", "change_plan"},
	{RoleAdmin, "subscription", "cancel"},
	{RoleSuperAdmin, "subscription", "update"},

	// users
	{RoleSuperAdmin, "user", "create"},
	{RoleAdmin, "user", "create"},
	{RoleSuperAdmin, "user", "list"},
	{RoleAdmin, "user", "list"},
	{RoleHRManager, "user", "list"},
	{RoleSuperAdmin, "user", "read"},
	{RoleAdmin, "user", "read"},
	{RoleHRManager, "user", "read"},
	{RoleSuperAdmin, "user", "update"},
	{RoleAdmin, "user", "update"},
	{RoleSuperAdmin, "user", "delete"},
	{RoleAdmin, "user", "delete"},
	{RoleSuperAdmin, "user", "toggle_active"},
	{RoleAdmin, "user", "toggle_active"},

	// departments
	{RoleAdmin, "department", "create"},
	{RoleHRManager, "department", "create"},
	{RoleAdmin, "department", "update"},
	{RoleHRManager, "department", "update"},
	{RoleAdmin, "department", "delete"},
	{RoleHRManager, "department", "delete"},

	// employees
	{RoleAdmin, "employee", "create"},
	{RoleHRManager, "employee", "create"},
	{RoleHRStaff, "employee", "create"},
	{RoleAdmin, "employee", "update"},
	{RoleHRManager, "employee", "update"},
	{RoleHRStaff, "employee", "update"},
	{RoleAdmin, "employee", "delete"},
	{RoleHRManager, "employee", "delete"},

	// leave
	{RoleAdmin, "leave_type", "create"},
	{RoleHRManager, "leave_type", "create"},
	{RoleAdmin, "leave_type", "update"},
	{RoleHRManager, "leave_type", "update"},
	{RoleAdmin, "leave_request", "list"},
	{RoleHRManager, "leave_request", "list"},
	{RoleHRStaff, "leave_request", "list"},
	{RoleAdmin, "leave_request", "decide"},
	{RoleHRManager, "leave_request", "decide"},

	// attendance
	{RoleAdmin, "attendance", "list"},
	{RoleHRManager, "attendance", "list"},
	{RoleHRStaff, "attendance", "list"},

	// payroll
	{RoleAdmin, "payroll", "create"},
	{RoleHRManager, "payroll", "create"},
	{RoleAdmin, "payroll", "read"},
	{RoleHRManager, "payroll", "read"},
	{RoleAdmin, "payroll", "update_item"},
	{RoleHRManager, "payroll", "update_item"},
	{RoleAdmin, "payroll", "process"},
	{RoleHRManager, "payroll", "process"},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

// NewService builds an in-memory enforcer loaded with the static policy set.
func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
