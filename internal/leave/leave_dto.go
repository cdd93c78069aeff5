package leave

type CreateLeaveTypeRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Description    string `json:"description"`
	MaxDaysPerYear int    `json:"max_days_per_year" binding:"omitempty,min=0"`
	IsPaid         *bool  `json:"is_paid"`
}

type UpdateLeaveTypeRequest struct {
	Name           string `json:"name" binding:"omitempty,max=100"`
	Description    string `json:"description"`
	MaxDaysPerYear *int   `json:"max_days_per_year" binding:"omitempty,min=0"`
	IsPaid         *bool  `json:"is_paid"`
	IsActive       *bool  `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	MaxDaysPerYear int    `json:"max_days_per_year"`
	IsPaid         bool   `json:"is_paid"`
	IsActive       bool   `json:"is_active"`
}

type CreateLeaveRequestRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason"`
}

type DecideLeaveRequestRequest struct {
	Status          string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	RejectionReason string `json:"rejection_reason"`
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	OrganizationID  string  `json:"organization_id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveTypeID     string  `json:"leave_type_id"`
	LeaveTypeName   string  `json:"leave_type_name,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason,omitempty"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectedBy      *string `json:"rejected_by,omitempty"`
	RejectedAt      *string `json:"rejected_at,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
