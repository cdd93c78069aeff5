package plan

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

type Plan struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_plan_name"`
	Slug        string    `gorm:"column:slug;type:varchar(100);not null;uniqueIndex:uq_plan_slug"`
	Description *string   `gorm:"column:description;type:text"`

	// Prices in minor units to avoid floating point drift.
	MonthlyPrice int64 `gorm:"column:monthly_price;type:bigint;not null;default:0"`
	YearlyPrice  int64 `gorm:"column:yearly_price;type:bigint;not null;default:0"`
	TrialDays    int   `gorm:"column:trial_days;not null;default:0"`

	// Tier limits are stored and surfaced but not enforced at write time.
	MaxEmployees   int `gorm:"column:max_employees;not null;default:0"`
	MaxDepartments int `gorm:"column:max_departments;not null;default:0"`
	MaxHRStaff     int `gorm:"column:max_hr_staff;not null;default:0"`

	Features  datatypes.JSON `gorm:"column:features;type:jsonb"`
	Status    string         `gorm:"column:status;type:varchar(20);not null;default:ACTIVE"`
	SortOrder int            `gorm:"column:sort_order;not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Plan) TableName() string {
	return "plans"
}
