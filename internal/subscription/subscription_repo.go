package subscription

import (
	"context"

	"hrms/internal/shared/pagination"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, sub *Subscription) error
	FindByOrganization(ctx context.Context, organizationID string) (*Subscription, error)
	FindByID(ctx context.Context, id string) (*Subscription, error)
	FindAll(ctx context.Context, params pagination.Params) ([]Subscription, int64, error)
	Update(ctx context.Context, sub *Subscription) error
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

func (r *repository) Create(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) FindByOrganization(ctx context.Context, organizationID string) (*Subscription, error) {
	var sub Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&sub, "organization_id = ?", organizationID).Error
	return &sub, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&sub, "id = ?", id).Error
	return &sub, err
}

func (r *repository) FindAll(ctx context.Context, params pagination.Params) ([]Subscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&Subscription{})

	if params.Search != "" {
		query = query.
			Joins("JOIN organizations ON organizations.id = subscriptions.organization_id").
			Where("organizations.name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Subscription
	err := query.
		Preload("Plan").
		Order("subscriptions.created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
