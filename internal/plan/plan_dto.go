package plan

type CreatePlanRequest struct {
	Name           string   `json:"name" binding:"required"`
	Slug           string   `json:"slug"`
	Description    *string  `json:"description"`
	MonthlyPrice   int64    `json:"monthly_price" binding:"min=0"`
	YearlyPrice    int64    `json:"yearly_price" binding:"min=0"`
	TrialDays      int      `json:"trial_days" binding:"min=0"`
	MaxEmployees   int      `json:"max_employees" binding:"min=0"`
	MaxDepartments int      `json:"max_departments" binding:"min=0"`
	MaxHRStaff     int      `json:"max_hr_staff" binding:"min=0"`
	Features       []string `json:"features"`
	SortOrder      int      `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    *string  `json:"description"`
	MonthlyPrice   *int64   `json:"monthly_price" binding:"omitempty,min=0"`
	YearlyPrice    *int64   `json:"yearly_price" binding:"omitempty,min=0"`
	TrialDays      *int     `json:"trial_days" binding:"omitempty,min=0"`
	MaxEmployees   *int     `json:"max_employees" binding:"omitempty,min=0"`
	MaxDepartments *int     `json:"max_departments" binding:"omitempty,min=0"`
	MaxHRStaff     *int     `json:"max_hr_staff" binding:"omitempty,min=0"`
	Features       []string `json:"features"`
	SortOrder      *int     `json:"sort_order"`
}

type PlanResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    *string  `json:"description,omitempty"`
	MonthlyPrice   int64    `json:"monthly_price"`
	YearlyPrice    int64    `json:"yearly_price"`
	TrialDays      int      `json:"trial_days"`
	MaxEmployees   int      `json:"max_employees"`
	MaxDepartments int      `json:"max_departments"`
	MaxHRStaff     int      `json:"max_hr_staff"`
	Features       []string `json:"features"`
	Status         string   `json:"status"`
	SortOrder      int      `json:"sort_order"`
}
