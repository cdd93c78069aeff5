package subscription

type SubscribeRequest struct {
	PlanID       string `json:"plan_id" binding:"required,uuid"`
	BillingCycle string `json:"billing_cycle" binding:"required,oneof=MONTHLY YEARLY"`
}

type ChangePlanRequest struct {
	BillingCycle string `json:"billing_cycle" binding:"omitempty,oneof=MONTHLY YEARLY"`
}

// UpdateSubscriptionRequest is the platform-operator escape hatch; it is the
// only path that can move a subscription to PAST_DUE or EXPIRED.
type UpdateSubscriptionRequest struct {
	Status    string `json:"status" binding:"omitempty,oneof=TRIAL ACTIVE PAST_DUE CANCELLED EXPIRED"`
	AutoRenew *bool  `json:"auto_renew"`
}

type SubscriptionResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	PlanID         string  `json:"plan_id"`
	PlanName       string  `json:"plan_name,omitempty"`
	Status         string  `json:"status"`
	BillingCycle   string  `json:"billing_cycle"`
	CurrentPrice   int64   `json:"current_price"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	TrialEndsAt    *string `json:"trial_ends_at,omitempty"`
	CancelledAt    *string `json:"cancelled_at,omitempty"`
	AutoRenew      bool    `json:"auto_renew"`
}
