package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
)

// Attendance is one employee-day; the unique index makes double clock-ins a
// constraint violation even under concurrent requests.
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id;type:uuid;not null;index"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date           time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	ClockInAt      time.Time  `gorm:"column:clock_in_at;not null"`
	ClockOutAt     *time.Time `gorm:"column:clock_out_at"`
	Status         string     `gorm:"column:status;type:varchar(10);not null"`
	WorkHours      float64    `gorm:"column:work_hours;type:numeric(5,2);not null;default:0"`
	OvertimeHours  float64    `gorm:"column:overtime_hours;type:numeric(5,2);not null;default:0"`
	Notes          string     `gorm:"column:notes;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
