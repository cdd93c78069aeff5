package employee

type CreateEmployeeRequest struct {
	UserID           string `json:"user_id" binding:"required,uuid"`
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	EmployeeCode     string `json:"employee_code" binding:"required,max=30"`
	Position         string `json:"position" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=PROBATION ACTIVE RESIGNED TERMINATED"`
	Salary           int64  `json:"salary" binding:"required,min=0"`
	HireDate         string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	EmployeeCode     string `json:"employee_code" binding:"omitempty,max=30"`
	Position         string `json:"position"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=PROBATION ACTIVE RESIGNED TERMINATED"`
	Salary           *int64 `json:"salary" binding:"omitempty,min=0"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	OrganizationID   string  `json:"organization_id"`
	UserID           string  `json:"user_id"`
	DepartmentID     *string `json:"department_id,omitempty"`
	DepartmentName   string  `json:"department_name,omitempty"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name,omitempty"`
	Email            string  `json:"email,omitempty"`
	Position         string  `json:"position"`
	EmploymentStatus string  `json:"employment_status"`
	Salary           int64   `json:"salary"`
	HireDate         string  `json:"hire_date"`
	CreatedAt        string  `json:"created_at"`
}
