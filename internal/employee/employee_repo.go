package employee

import (
	"context"

	"hrms/internal/shared/pagination"
	"hrms/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]Employee, int64, error)
	FindByID(ctx context.Context, organizationID, id string) (*Employee, error)
	FindByCode(ctx context.Context, organizationID, code string, excludeID *string) (*Employee, error)
	FindByUser(ctx context.Context, userID string) (*Employee, error)
	FindEligibleForPayroll(ctx context.Context, organizationID string) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

var sortableColumns = map[string]string{
	"employeeCode": "employee_code",
	"position":     "position",
	"hireDate":     "hire_date",
	"createdAt":    "created_at",
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]Employee, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(organizationID))

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.
			Joins("JOIN users ON users.id = employees.user_id").
			Where("employees.employee_code ILIKE ? OR employees.position ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Employee
	err := query.
		Preload("User").
		Preload("Department").
		Order(params.Order(sortableColumns, "created_at")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("User").
		Preload("Department").
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByCode(ctx context.Context, organizationID, code string, excludeID *string) (*Employee, error) {
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("employee_code = ?", code)
	if excludeID != nil && *excludeID != "" {
		query = query.Where("id <> ?", *excludeID)
	}

	var emp Employee
	err := query.First(&emp).Error
	return &emp, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "user_id = ?", userID).Error
	return &emp, err
}

// FindEligibleForPayroll returns employees on the payroll for the period:
// everyone currently employed, including probation.
func (r *repository) FindEligibleForPayroll(ctx context.Context, organizationID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("employment_status IN ?", []string{StatusActive, StatusProbation}).
		Order("employee_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
