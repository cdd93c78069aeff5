package attendance

import (
	"context"
	"time"

	"hrms/internal/shared/pagination"
	"hrms/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, att *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, organizationID, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, organizationID, employeeID string, date *time.Time, params pagination.Params) ([]Attendance, int64, error)
	Update(ctx context.Context, att *Attendance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var sortableColumns = map[string]string{
	"date":      "date",
	"status":    "status",
	"createdAt": "created_at",
}

func (r *repository) Create(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, organizationID, employeeID string, date time.Time) (*Attendance, error) {
	var att Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		First(&att).Error
	return &att, err
}

func (r *repository) FindAll(ctx context.Context, organizationID, employeeID string, date *time.Time, params pagination.Params) ([]Attendance, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Scopes(tenant.Scope(organizationID))

	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if date != nil {
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Attendance
	err := query.
		Order(params.Order(sortableColumns, "date")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}
