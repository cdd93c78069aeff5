package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"column:name;type:varchar(150);not null"`
	Slug      string         `gorm:"column:slug;type:varchar(150);not null;uniqueIndex:uq_organization_slug"`
	Email     *string        `gorm:"column:email;type:varchar(150)"`
	Phone     *string        `gorm:"column:phone;type:varchar(30)"`
	Address   *string        `gorm:"column:address;type:text"`
	Website   *string        `gorm:"column:website;type:varchar(200)"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Organization) TableName() string {
	return "organizations"
}
