package organization

type CreateOrganizationRequest struct {
	Name    string  `json:"name" binding:"required"`
	Slug    string  `json:"slug"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Website *string `json:"website"`
}

type UpdateOrganizationRequest struct {
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Website *string `json:"website"`
}

type OrganizationResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Website  *string `json:"website,omitempty"`
	IsActive bool    `json:"is_active"`
}
