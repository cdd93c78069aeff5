package user

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Phone          string `json:"phone"`
	Role           string `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN HR_MANAGER HR_STAFF EMPLOYEE"`
	OrganizationID string `json:"organization_id" binding:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN HR_MANAGER HR_STAFF EMPLOYEE"`
}

// UserResponse deliberately has no password field; hashes never leave the
// service layer.
type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Phone          string  `json:"phone,omitempty"`
	Role           string  `json:"role"`
	OrganizationID *string `json:"organization_id,omitempty"`
	IsActive       bool    `json:"is_active"`
	LastLoginAt    *string `json:"last_login_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
