package payroll

import (
	"context"

	"hrms/internal/shared/pagination"
	"hrms/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]Payroll, int64, error)
	FindByID(ctx context.Context, organizationID, id string) (*Payroll, error)
	FindByPeriod(ctx context.Context, organizationID string, month, year int) (*Payroll, error)
	FindItem(ctx context.Context, payrollID, itemID string) (*PayrollItem, error)
	Update(ctx context.Context, p *Payroll) error
	UpdateItem(ctx context.Context, item *PayrollItem) error
	SumNetSalaries(ctx context.Context, payrollID string) (int64, error)
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
	"year":      "year",
	"month":     "month",
	"status":    "status",
	"createdAt": "created_at",
}

// Create persists the payroll and its items in one insert batch; gorm wraps
// parent and associations in a transaction.
func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]Payroll, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Scopes(tenant.Scope(organizationID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Payroll
	err := query.
		Order(params.Order(sortableColumns, "created_at")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("Items").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByPeriod(ctx context.Context, organizationID string, month, year int) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("month = ? AND year = ?", month, year).
		First(&p).Error
	return &p, err
}

func (r *repository) FindItem(ctx context.Context, payrollID, itemID string) (*PayrollItem, error) {
	var item PayrollItem
	err := r.db.WithContext(ctx).
		Where("payroll_id = ?", payrollID).
		First(&item, "id = ?", itemID).Error
	return &item, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Items").Save(p).Error
}

func (r *repository) UpdateItem(ctx context.Context, item *PayrollItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) SumNetSalaries(ctx context.Context, payrollID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&PayrollItem{}).
		Where("payroll_id = ?", payrollID).
		Select("COALESCE(SUM(net_salary), 0)").
		Scan(&total).Error
	return total, err
}
