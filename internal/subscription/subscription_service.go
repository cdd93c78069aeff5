package subscription

import (
	"context"
	"errors"
	"time"

	"hrms/internal/plan"
	planerrors "hrms/internal/plan/errors"
	"hrms/internal/shared/pagination"
	subscriptionerrors "hrms/internal/subscription/errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Subscribe(ctx context.Context, organizationID string, req SubscribeRequest) (SubscriptionResponse, error)
	ChangePlan(ctx context.Context, organizationID, planID string, req ChangePlanRequest) (SubscriptionResponse, error)
	Cancel(ctx context.Context, organizationID string) (SubscriptionResponse, error)
	Current(ctx context.Context, organizationID string) (SubscriptionResponse, error)
	GetAll(ctx context.Context, params pagination.Params) ([]SubscriptionResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateSubscriptionRequest) (SubscriptionResponse, error)

	// CheckAccess is the feature gate: it resolves the tenant's subscription
	// and fails with Forbidden unless the status grants access right now.
	CheckAccess(ctx context.Context, organizationID string) (SubscriptionResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	planRepo plan.Repository
	clock    clockwork.Clock
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, planRepo plan.Repository, clock clockwork.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("subscription.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("subscription.service")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{db: db, repo: repo, planRepo: planRepo, clock: clock, logger: l}
}

func (s *service) Subscribe(ctx context.Context, organizationID string, req SubscribeRequest) (SubscriptionResponse, error) {
	s.logger.Debug("subscribe requested",
		zap.String("organization_id", organizationID),
		zap.String("plan_id", req.PlanID),
		zap.String("billing_cycle", req.BillingCycle),
	)

	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return SubscriptionResponse{}, subscriptionerrors.ErrNoOrganization
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return SubscriptionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByOrganization(ctx, organizationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SubscriptionResponse{}, err
	}
	hasExisting := err == nil

	if hasExisting && (existing.Status == StatusActive || existing.Status == StatusTrial) {
		return SubscriptionResponse{}, subscriptionerrors.ErrAlreadySubscribed
	}

	p, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionResponse{}, planerrors.ErrPlanNotFound
		}
		return SubscriptionResponse{}, err
	}

	price := p.MonthlyPrice
	if req.BillingCycle == CycleYearly {
		price = p.YearlyPrice
	}

	now := s.clock.Now().UTC()
	status := StatusActive
	var trialEndsAt *time.Time
	if p.TrialDays > 0 {
		status = StatusTrial
		t := now.Add(time.Duration(p.TrialDays) * 24 * time.Hour)
		trialEndsAt = &t
	}

	var sub *Subscription
	if hasExisting {
		// Re-subscribe after cancellation/expiry reuses the row: exactly one
		// subscription row ever exists per organization.
		existing.PlanID = p.ID
		existing.BillingCycle = req.BillingCycle
		existing.CurrentPrice = price
		existing.Status = status
		existing.StartDate = now
		existing.TrialEndsAt = trialEndsAt
		existing.EndDate = nil
		existing.CancelledAt = nil
		existing.AutoRenew = true

		if err := qtx.Update(ctx, existing); err != nil {
			return SubscriptionResponse{}, err
		}
		sub = existing
	} else {
		sub = &Subscription{
			ID:             uuid.New(),
			OrganizationID: orgUUID,
			PlanID:         p.ID,
			Status:         status,
			BillingCycle:   req.BillingCycle,
			CurrentPrice:   price,
			StartDate:      now,
			TrialEndsAt:    trialEndsAt,
			AutoRenew:      true,
		}

		if err := qtx.Create(ctx, sub); err != nil {
			return SubscriptionResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return SubscriptionResponse{}, err
	}

	sub.Plan = p
	s.logger.Info("subscribe success",
		zap.String("organization_id", organizationID),
		zap.String("plan_id", req.PlanID),
		zap.String("status", sub.Status),
	)
	return mapToResponse(*sub), nil
}

func (s *service) ChangePlan(ctx context.Context, organizationID, planID string, req ChangePlanRequest) (SubscriptionResponse, error) {
	sub, err := s.findByOrganization(ctx, organizationID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	p, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionResponse{}, planerrors.ErrPlanNotFound
		}
		return SubscriptionResponse{}, err
	}

	cycle := req.BillingCycle
	if cycle == "" {
		cycle = sub.BillingCycle
	}

	price := p.MonthlyPrice
	if cycle == CycleYearly {
		price = p.YearlyPrice
	}

	// A plan change swaps plan and price only; status, trial window, and the
	// billing anchor (start date) stay where they are.
	sub.PlanID = p.ID
	sub.BillingCycle = cycle
	sub.CurrentPrice = price

	if err := s.repo.Update(ctx, sub); err != nil {
		return SubscriptionResponse{}, err
	}

	sub.Plan = p
	return mapToResponse(*sub), nil
}

func (s *service) Cancel(ctx context.Context, organizationID string) (SubscriptionResponse, error) {
	sub, err := s.findByOrganization(ctx, organizationID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	now := s.clock.Now().UTC()
	sub.Status = StatusCancelled
	sub.CancelledAt = &now
	sub.AutoRenew = false

	// Row is kept for billing history; a later Subscribe reuses it.
	if err := s.repo.Update(ctx, sub); err != nil {
		return SubscriptionResponse{}, err
	}

	s.logger.Info("subscription cancelled", zap.String("organization_id", organizationID))
	return mapToResponse(*sub), nil
}

func (s *service) Current(ctx context.Context, organizationID string) (SubscriptionResponse, error) {
	sub, err := s.findByOrganization(ctx, organizationID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	return mapToResponse(*sub), nil
}

func (s *service) GetAll(ctx context.Context, params pagination.Params) ([]SubscriptionResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]SubscriptionResponse, len(rows))
	for i, sub := range rows {
		res[i] = mapToResponse(sub)
	}
	return res, total, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSubscriptionRequest) (SubscriptionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionNotFound
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionNotFound
		}
		return SubscriptionResponse{}, err
	}

	if req.Status != "" {
		sub.Status = req.Status
	}
	if req.AutoRenew != nil {
		sub.AutoRenew = *req.AutoRenew
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return SubscriptionResponse{}, err
	}
	return mapToResponse(*sub), nil
}

// CheckAccess implements the lazy trial-expiry rule: a TRIAL subscription
// past its trialEndsAt is treated as expired at read time, without any
// background job flipping the stored status.
func (s *service) CheckAccess(ctx context.Context, organizationID string) (SubscriptionResponse, error) {
	if organizationID == "" {
		return SubscriptionResponse{}, subscriptionerrors.ErrNoOrganization
	}

	sub, err := s.repo.FindByOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionResponse{}, subscriptionerrors.ErrNoActiveSubscription
		}
		return SubscriptionResponse{}, err
	}

	if sub.Status != StatusActive && sub.Status != StatusTrial {
		return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionInactive
	}

	if sub.Status == StatusTrial && sub.TrialEndsAt != nil && s.clock.Now().After(*sub.TrialEndsAt) {
		return SubscriptionResponse{}, subscriptionerrors.ErrTrialExpired
	}

	return mapToResponse(*sub), nil
}

func (s *service) findByOrganization(ctx context.Context, organizationID string) (*Subscription, error) {
	if organizationID == "" {
		return nil, subscriptionerrors.ErrNoOrganization
	}

	sub, err := s.repo.FindByOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscriptionerrors.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func mapToResponse(sub Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:             sub.ID.String(),
		OrganizationID: sub.OrganizationID.String(),
		PlanID:         sub.PlanID.String(),
		Status:         sub.Status,
		BillingCycle:   sub.BillingCycle,
		CurrentPrice:   sub.CurrentPrice,
		StartDate:      sub.StartDate.Format(time.RFC3339),
		AutoRenew:      sub.AutoRenew,
	}

	if sub.Plan != nil {
		resp.PlanName = sub.Plan.Name
	}
	if sub.EndDate != nil {
		v := sub.EndDate.Format(time.RFC3339)
		resp.EndDate = &v
	}
	if sub.TrialEndsAt != nil {
		v := sub.TrialEndsAt.Format(time.RFC3339)
		resp.TrialEndsAt = &v
	}
	if sub.CancelledAt != nil {
		v := sub.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &v
	}

	return resp
}
