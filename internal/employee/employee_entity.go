package employee

import (
	"time"

	"hrms/internal/department"
	"hrms/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusProbation  = "PROBATION"
	StatusActive     = "ACTIVE"
	StatusResigned   = "RESIGNED"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID   uuid.UUID  `gorm:"column:organization_id;type:uuid;not null;uniqueIndex:uq_employee_org_code"`
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	DepartmentID     *uuid.UUID `gorm:"column:department_id;type:uuid;index"`
	EmployeeCode     string     `gorm:"column:employee_code;type:varchar(30);not null;uniqueIndex:uq_employee_org_code"`
	Position         string     `gorm:"column:position;type:varchar(100);not null"`
	EmploymentStatus string     `gorm:"column:employment_status;type:varchar(20);not null;default:'PROBATION'"`
	// Salary is the base monthly salary in minor currency units.
	Salary    int64          `gorm:"column:salary;type:bigint;not null;default:0"`
	HireDate  time.Time      `gorm:"column:hire_date;type:date;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	User       *user.User             `gorm:"foreignKey:UserID"`
	Department *department.Department `gorm:"foreignKey:DepartmentID"`
}

func (Employee) TableName() string {
	return "employees"
}

func validEmploymentStatus(s string) bool {
	switch s {
	case StatusProbation, StatusActive, StatusResigned, StatusTerminated:
		return true
	}
	return false
}
