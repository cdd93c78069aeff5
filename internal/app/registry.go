package app

import (
	"context"
	"errors"

	"hrms/internal/attendance"
	"hrms/internal/auth"
	"hrms/internal/department"
	"hrms/internal/employee"
	"hrms/internal/leave"
	"hrms/internal/messaging/kafka"
	"hrms/internal/organization"
	"hrms/internal/payroll"
	"hrms/internal/plan"
	"hrms/internal/rbac"
	"hrms/internal/subscription"
	"hrms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	gormlib "gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gormlib.DB,
	rdb *redis.Client,
	clock clockwork.Clock,
) error {
	// --- Repositories ---
	organizationRepo := organization.NewRepository(gormDB)
	planRepo := plan.NewRepository(gormDB)
	subscriptionRepo := subscription.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	employeeResolver := func(ctx context.Context, userID string) (string, error) {
		emp, err := employeeRepo.FindByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, gormlib.ErrRecordNotFound) {
				return "", nil
			}
			return "", err
		}
		return emp.ID.String(), nil
	}

	organizationService := organization.NewService(organizationRepo)
	planService := plan.NewService(planRepo, rdb)
	subscriptionService := subscription.NewService(gormDB, subscriptionRepo, planRepo, clock)
	userService := user.NewService(userRepo)
	authService := auth.NewService(gormDB, authRepo, userRepo, organizationRepo, employeeResolver, clock)
	departmentService := department.NewService(departmentRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, outboxRepo, clock)
	leaveService := leave.NewService(leaveRepo, clock)
	attendanceService := attendance.NewService(attendanceRepo, clock)
	payrollService := payroll.NewService(gormDB, payrollRepo, employeeRepo, outboxRepo, clock)

	// --- Handlers ---
	organizationHandler := organization.NewHandler(organizationService)
	planHandler := plan.NewHandler(planService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService)

	// Tenant feature routes sit behind the subscription gate.
	gate := subscription.Gate(subscriptionService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		organization.RegisterRoutes(api, organizationHandler, rbacService)
		plan.RegisterRoutes(api, planHandler, rbacService)
		subscription.RegisterRoutes(api, subscriptionHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService, gate)
		employee.RegisterRoutes(api, employeeHandler, rbacService, gate, rdb)
		leave.RegisterRoutes(api, leaveHandler, rbacService, gate)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, gate)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, gate, rdb)
	}

	return nil
}
