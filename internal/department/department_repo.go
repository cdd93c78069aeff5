package department

import (
	"context"

	"hrms/internal/shared/pagination"
	"hrms/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]Department, int64, error)
	FindByID(ctx context.Context, organizationID, id string) (*Department, error)
	FindByCode(ctx context.Context, organizationID, code string, excludeID *string) (*Department, error)
	CountEmployees(ctx context.Context, id string) (int64, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var sortableColumns = map[string]string{
	"name":      "name",
	"code":      "code",
	"createdAt": "created_at",
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]Department, int64, error) {
	query := r.db.WithContext(ctx).Model(&Department{}).Scopes(tenant.Scope(organizationID))

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Department
	err := query.
		Order(params.Order(sortableColumns, "created_at")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID)).First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) FindByCode(ctx context.Context, organizationID, code string, excludeID *string) (*Department, error) {
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID)).Where("code = ?", code)
	if excludeID != nil && *excludeID != "" {
		query = query.Where("id <> ?", *excludeID)
	}

	var dept Department
	err := query.First(&dept).Error
	return &dept, err
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}
