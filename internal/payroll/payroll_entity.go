package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "DRAFT"
	StatusCompleted = "COMPLETED"
)

// Payroll is one organization's pay run for a month. Items snapshot each
// employee's pay at creation time; later employee changes do not leak in.
type Payroll struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id;type:uuid;not null;uniqueIndex:uq_payroll_org_period"`
	Month          int        `gorm:"column:month;not null;uniqueIndex:uq_payroll_org_period"`
	Year           int        `gorm:"column:year;not null;uniqueIndex:uq_payroll_org_period"`
	Status         string     `gorm:"column:status;type:varchar(10);not null;default:'DRAFT'"`
	TotalAmount    int64      `gorm:"column:total_amount;type:bigint;not null;default:0"`
	ProcessedAt    *time.Time `gorm:"column:processed_at"`
	ProcessedBy    *uuid.UUID `gorm:"column:processed_by;type:uuid"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`

	Items []PayrollItem `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type PayrollItem struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	PayrollID  uuid.UUID `gorm:"column:payroll_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null"`
	BaseSalary int64     `gorm:"column:base_salary;type:bigint;not null"`
	Overtime   int64     `gorm:"column:overtime;type:bigint;not null;default:0"`
	Bonus      int64     `gorm:"column:bonus;type:bigint;not null;default:0"`
	Deductions int64     `gorm:"column:deductions;type:bigint;not null;default:0"`
	Tax        int64     `gorm:"column:tax;type:bigint;not null;default:0"`
	// SocialSecurity holds statutory contributions withheld from the employee.
	SocialSecurity int64     `gorm:"column:social_security;type:bigint;not null;default:0"`
	NetSalary      int64     `gorm:"column:net_salary;type:bigint;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (PayrollItem) TableName() string {
	return "payroll_items"
}

func (i *PayrollItem) computeNetSalary() int64 {
	return i.BaseSalary + i.Overtime + i.Bonus - i.Deductions - i.Tax - i.SocialSecurity
}
