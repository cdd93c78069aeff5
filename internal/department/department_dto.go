package department

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required,max=30"`
	Description string `json:"description"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code" binding:"omitempty,max=30"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type DepartmentResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	Description    string `json:"description,omitempty"`
	IsActive       bool   `json:"is_active"`
	EmployeeCount  int64  `json:"employee_count"`
	CreatedAt      string `json:"created_at"`
}
