package organization

import (
	"context"

	"hrms/internal/shared/pagination"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, org *Organization) error
	FindAll(ctx context.Context, params pagination.Params) ([]Organization, int64, error)
	FindByID(ctx context.Context, id string) (*Organization, error)
	FindBySlug(ctx context.Context, slug string, excludeID *string) (*Organization, error)
	Update(ctx context.Context, org *Organization) error
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
	"name":      "name",
	"slug":      "slug",
	"createdAt": "created_at",
}

func (r *repository) Create(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) FindAll(ctx context.Context, params pagination.Params) ([]Organization, int64, error) {
	query := r.db.WithContext(ctx).Model(&Organization{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Organization
	err := query.
		Order(params.Order(sortableColumns, "created_at")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	return &org, err
}

func (r *repository) FindBySlug(ctx context.Context, slug string, excludeID *string) (*Organization, error) {
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if excludeID != nil && *excludeID != "" {
		query = query.Where("id <> ?", *excludeID)
	}

	var org Organization
	err := query.First(&org).Error
	return &org, err
}

func (r *repository) Update(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Organization{}, "id = ?", id).Error
}
