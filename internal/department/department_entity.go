package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID uuid.UUID      `gorm:"column:organization_id;type:uuid;not null;uniqueIndex:uq_department_org_code"`
	Name           string         `gorm:"column:name;type:varchar(150);not null"`
	Code           string         `gorm:"column:code;type:varchar(30);not null;uniqueIndex:uq_department_org_code"`
	Description    string         `gorm:"column:description;type:text"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Department) TableName() string {
	return "departments"
}
