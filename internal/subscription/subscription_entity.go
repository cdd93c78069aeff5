package subscription

import (
	"time"

	"hrms/internal/plan"

	"github.com/google/uuid"
)

const (
	StatusTrial     = "TRIAL"
	StatusActive    = "ACTIVE"
	StatusPastDue   = "PAST_DUE"
	StatusCancelled = "CANCELLED"
	StatusExpired   = "EXPIRED"

	CycleMonthly = "MONTHLY"
	CycleYearly  = "YEARLY"
)

// Subscription binds one organization to one plan. The unique index on
// organization_id guarantees at most one row per tenant; re-subscribing
// after cancellation reuses the row instead of inserting a second one.
type Subscription struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;not null;uniqueIndex:uq_subscription_organization"`
	PlanID         uuid.UUID `gorm:"column:plan_id;type:uuid;not null;index"`
	Plan           *plan.Plan `gorm:"foreignKey:PlanID;references:ID"`

	Status       string `gorm:"column:status;type:varchar(20);not null;default:TRIAL"`
	BillingCycle string `gorm:"column:billing_cycle;type:varchar(10);not null;default:MONTHLY"`

	// Price snapshot taken at subscribe/change-plan time; later plan price
	// edits do not retroactively change what the tenant pays.
	CurrentPrice int64 `gorm:"column:current_price;type:bigint;not null;default:0"`

	StartDate   time.Time  `gorm:"column:start_date;not null"`
	EndDate     *time.Time `gorm:"column:end_date"`
	TrialEndsAt *time.Time `gorm:"column:trial_ends_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
	AutoRenew   bool       `gorm:"column:auto_renew;not null;default:true"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
