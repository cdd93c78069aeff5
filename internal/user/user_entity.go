package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleHRManager  = "HR_MANAGER"
	RoleHRStaff    = "HR_STAFF"
	RoleEmployee   = "EMPLOYEE"
)

type User struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Email          string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password       string     `gorm:"column:password;type:varchar(255);not null"`
	FirstName      string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName       string     `gorm:"column:last_name;type:varchar(100);not null"`
	Phone          string     `gorm:"column:phone;type:varchar(50)"`
	Role           string     `gorm:"column:role;type:varchar(20);not null;default:'EMPLOYEE'"`
	OrganizationID *uuid.UUID `gorm:"column:organization_id;type:uuid;index"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt    *time.Time `gorm:"column:last_login_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
