package payroll

type CreatePayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type UpdatePayrollItemRequest struct {
	Overtime       *int64 `json:"overtime" binding:"omitempty,min=0"`
	Bonus          *int64 `json:"bonus" binding:"omitempty,min=0"`
	Deductions     *int64 `json:"deductions" binding:"omitempty,min=0"`
	Tax            *int64 `json:"tax" binding:"omitempty,min=0"`
	SocialSecurity *int64 `json:"social_security" binding:"omitempty,min=0"`
}

type PayrollItemResponse struct {
	ID             string `json:"id"`
	PayrollID      string `json:"payroll_id"`
	EmployeeID     string `json:"employee_id"`
	BaseSalary     int64  `json:"base_salary"`
	Overtime       int64  `json:"overtime"`
	Bonus          int64  `json:"bonus"`
	Deductions     int64  `json:"deductions"`
	Tax            int64  `json:"tax"`
	SocialSecurity int64  `json:"social_security"`
	NetSalary      int64  `json:"net_salary"`
}

type PayrollResponse struct {
	ID             string                `json:"id"`
	OrganizationID string                `json:"organization_id"`
	Month          int                   `json:"month"`
	Year           int                   `json:"year"`
	Status         string                `json:"status"`
	TotalAmount    int64                 `json:"total_amount"`
	ProcessedAt    *string               `json:"processed_at,omitempty"`
	ProcessedBy    *string               `json:"processed_by,omitempty"`
	CreatedAt      string                `json:"created_at"`
	Items          []PayrollItemResponse `json:"items,omitempty"`
}
