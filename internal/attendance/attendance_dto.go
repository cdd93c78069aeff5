package attendance

type ClockInRequest struct {
	Notes string `json:"notes"`
}

type ClockOutRequest struct {
	Notes string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	ClockInAt      string  `json:"clock_in_at"`
	ClockOutAt     *string `json:"clock_out_at,omitempty"`
	Status         string  `json:"status"`
	WorkHours      float64 `json:"work_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	Notes          string  `json:"notes,omitempty"`
}

type TodayStatusResponse struct {
	ClockedIn  bool                `json:"clocked_in"`
	ClockedOut bool                `json:"clocked_out"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}
