package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

type LeaveType struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID uuid.UUID      `gorm:"column:organization_id;type:uuid;not null;uniqueIndex:uq_leave_type_org_name"`
	Name           string         `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_leave_type_org_name"`
	Description    string         `gorm:"column:description;type:text"`
	MaxDaysPerYear int            `gorm:"column:max_days_per_year;not null;default:0"`
	IsPaid         bool           `gorm:"column:is_paid;not null;default:true"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveRequest struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID  uuid.UUID  `gorm:"column:organization_id;type:uuid;not null;index"`
	EmployeeID      uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	LeaveTypeID     uuid.UUID  `gorm:"column:leave_type_id;type:uuid;not null"`
	StartDate       time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate         time.Time  `gorm:"column:end_date;type:date;not null"`
	TotalDays       int        `gorm:"column:total_days;not null"`
	Reason          string     `gorm:"column:reason;type:text"`
	Status          string     `gorm:"column:status;type:varchar(10);not null;default:'PENDING';index"`
	ApprovedBy      *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	RejectedBy      *uuid.UUID `gorm:"column:rejected_by;type:uuid"`
	RejectedAt      *time.Time `gorm:"column:rejected_at"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
