package plan

import (
	"context"

	"hrms/internal/shared/pagination"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Plan) error
	FindAll(ctx context.Context, params pagination.Params) ([]Plan, int64, error)
	FindAllActive(ctx context.Context) ([]Plan, error)
	FindByID(ctx context.Context, id string) (*Plan, error)
	FindByNameOrSlug(ctx context.Context, name, slug string, excludeID *string) (*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id string) error
	CountSubscriptions(ctx context.Context, planID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var sortableColumns = map[string]string{
	"name":      "name",
	"sortOrder": "sort_order",
	"createdAt": "created_at",
}

func (r *repository) Create(ctx context.Context, p *Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, params pagination.Params) ([]Plan, int64, error) {
	query := r.db.WithContext(ctx).Model(&Plan{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Plan
	err := query.
		Order(params.Order(sortableColumns, "sort_order")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Plan, error) {
	var rows []Plan
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Plan, error) {
	var p Plan
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByNameOrSlug(ctx context.Context, name, slug string, excludeID *string) (*Plan, error) {
	query := r.db.WithContext(ctx).Where("name = ? OR slug = ?", name, slug)
	if excludeID != nil && *excludeID != "" {
		query = query.Where("id <> ?", *excludeID)
	}

	var p Plan
	err := query.First(&p).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Plan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Plan{}, "id = ?", id).Error
}

func (r *repository) CountSubscriptions(ctx context.Context, planID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("subscriptions").
		Where("plan_id = ?", planID).
		Count(&count).Error
	return count, err
}
