package leave

import (
	"context"

	"hrms/internal/shared/pagination"
	"hrms/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	CreateType(ctx context.Context, lt *LeaveType) error
	FindActiveTypes(ctx context.Context, organizationID string) ([]LeaveType, error)
	FindTypeByID(ctx context.Context, organizationID, id string) (*LeaveType, error)
	FindTypeByName(ctx context.Context, organizationID, name string, excludeID *string) (*LeaveType, error)
	UpdateType(ctx context.Context, lt *LeaveType) error

	CreateRequest(ctx context.Context, lr *LeaveRequest) error
	FindRequests(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]LeaveRequest, int64, error)
	FindRequestByID(ctx context.Context, organizationID, id string) (*LeaveRequest, error)
	UpdateRequest(ctx context.Context, lr *LeaveRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var requestSortableColumns = map[string]string{
	"startDate": "start_date",
	"status":    "status",
	"createdAt": "created_at",
}

func (r *repository) CreateType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) FindActiveTypes(ctx context.Context, organizationID string) ([]LeaveType, error) {
	var rows []LeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindTypeByID(ctx context.Context, organizationID, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID)).First(&lt, "id = ?", id).Error
	return &lt, err
}

func (r *repository) FindTypeByName(ctx context.Context, organizationID, name string, excludeID *string) (*LeaveType, error) {
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID)).Where("name = ?", name)
	if excludeID != nil && *excludeID != "" {
		query = query.Where("id <> ?", *excludeID)
	}

	var lt LeaveType
	err := query.First(&lt).Error
	return &lt, err
}

func (r *repository) UpdateType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) CreateRequest(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

// FindRequests lists an organization's requests; employeeID narrows it to the
// caller's own when set.
func (r *repository) FindRequests(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]LeaveRequest, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(organizationID))

	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if params.Search != "" {
		query = query.Where("status = ?", params.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []LeaveRequest
	err := query.
		Preload("LeaveType").
		Order(params.Order(requestSortableColumns, "created_at")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindRequestByID(ctx context.Context, organizationID, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Preload("LeaveType").
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) UpdateRequest(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}
