package subscription_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hrms/internal/plan"
	"hrms/internal/shared/pagination"
	"hrms/internal/subscription"
	subscriptionerrors "hrms/internal/subscription/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeSubscriptionRepository struct {
	withTxFn             func(tx *gorm.DB) subscription.Repository
	createFn             func(ctx context.Context, sub *subscription.Subscription) error
	findByOrganizationFn func(ctx context.Context, organizationID string) (*subscription.Subscription, error)
	findByIDFn           func(ctx context.Context, id string) (*subscription.Subscription, error)
	findAllFn            func(ctx context.Context, params pagination.Params) ([]subscription.Subscription, int64, error)
	updateFn             func(ctx context.Context, sub *subscription.Subscription) error
}

func (f *fakeSubscriptionRepository) WithTx(tx *gorm.DB) subscription.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if f.createFn != nil {
		return f.createFn(ctx, sub)
	}
	return nil
}

func (f *fakeSubscriptionRepository) FindByOrganization(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
	if f.findByOrganizationFn != nil {
		return f.findByOrganizationFn(ctx, organizationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubscriptionRepository) FindByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubscriptionRepository) FindAll(ctx context.Context, params pagination.Params) ([]subscription.Subscription, int64, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, sub)
	}
	return nil
}

type fakePlanRepository struct {
	findByIDFn func(ctx context.Context, id string) (*plan.Plan, error)
	plan.Repository
}

func (f *fakePlanRepository) FindByID(ctx context.Context, id string) (*plan.Plan, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type subscriptionServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *fakeSubscriptionRepository
	planRepo *fakePlanRepository
	clock    *clockwork.FakeClock
	service  subscription.Service
}

func setupSubscriptionServiceTest(t *testing.T) *subscriptionServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := &fakeSubscriptionRepository{}
	planRepo := &fakePlanRepository{}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	svc := subscription.NewService(gormDB, repo, planRepo, clock)

	return &subscriptionServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     repo,
		planRepo: planRepo,
		clock:    clock,
		service:  svc,
	}
}

func starterPlan() *plan.Plan {
	return &plan.Plan{
		ID:           uuid.New(),
		Name:         "Starter",
		Slug:         "starter",
		MonthlyPrice: 99_00,
		YearlyPrice:  999_00,
		TrialDays:    0,
		Status:       plan.StatusActive,
	}
}

func TestSubscriptionService_Subscribe_NewActive(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionServiceTest(t)
	defer deps.db.Close()

	p := starterPlan()
	deps.planRepo.findByIDFn = func(ctx context.Context, id string) (*plan.Plan, error) {
		return p, nil
	}

	var created *subscription.Subscription
	deps.repo.createFn = func(ctx context.Context, sub *subscription.Subscription) error {
		created = sub
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Subscribe(ctx, uuid.NewString(), subscription.SubscribeRequest{
		PlanID:       p.ID.String(),
		BillingCycle: subscription.CycleMonthly,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, subscription.StatusActive, resp.Status)
	assert.Equal(t, int64(99_00), resp.CurrentPrice)
	assert.True(t, resp.AutoRenew)
	assert.Nil(t, resp.TrialEndsAt)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSubscriptionService_Subscribe_TrialWhenPlanHasTrialDays(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionServiceTest(t)
	defer deps.db.Close()

	p := starterPlan()
	p.TrialDays = 14
	deps.planRepo.findByIDFn = func(ctx context.Context, id string) (*plan.Plan, error) {
		return p, nil
	}

	var created *subscription.Subscription
	deps.repo.createFn = func(ctx context.Context, sub *subscription.Subscription) error {
		created = sub
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Subscribe(ctx, uuid.NewString(), subscription.SubscribeRequest{
		PlanID:       p.ID.String(),
		BillingCycle: subscription.CycleYearly,
	})

	assert.NoError(t, err)
	assert.Equal(t, subscription.StatusTrial, resp.Status)
	assert.Equal(t, int64(999_00), resp.CurrentPrice)
	expectedEnd := deps.clock.Now().UTC().Add(14 * 24 * time.Hour)
	assert.Equal(t, expectedEnd, created.TrialEndsAt.UTC())
}

func TestSubscriptionService_Subscribe_ConflictWhenAlreadyActive(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
		return &subscription.Subscription{Status: subscription.StatusActive}, nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Subscribe(ctx, uuid.NewString(), subscription.SubscribeRequest{
		PlanID:       uuid.NewString(),
		BillingCycle: subscription.CycleMonthly,
	})

	assert.ErrorIs(t, err, subscriptionerrors.ErrAlreadySubscribed)
}

func TestSubscriptionService_Subscribe_ReusesCancelledRow(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	cancelledAt := deps.clock.Now().Add(-30 * 24 * time.Hour)
	endDate := cancelledAt
	existing := &subscription.Subscription{
		ID:             uuid.New(),
		OrganizationID: orgID,
		PlanID:         uuid.New(),
		Status:         subscription.StatusCancelled,
		BillingCycle:   subscription.CycleMonthly,
		CancelledAt:    &cancelledAt,
		EndDate:        &endDate,
		AutoRenew:      false,
	}
	deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
		return existing, nil
	}

	p := starterPlan()
	deps.planRepo.findByIDFn = func(ctx context.Context, id string) (*plan.Plan, error) {
		return p, nil
	}

	created := false
	deps.repo.createFn = func(ctx context.Context, sub *subscription.Subscription) error {
		created = true
		return nil
	}
	var updated *subscription.Subscription
	deps.repo.updateFn = func(ctx context.Context, sub *subscription.Subscription) error {
		updated = sub
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Subscribe(ctx, orgID.String(), subscription.SubscribeRequest{
		PlanID:       p.ID.String(),
		BillingCycle: subscription.CycleYearly,
	})

	assert.NoError(t, err)
	assert.False(t, created, "resubscribe must reuse the existing row")
	assert.NotNil(t, updated)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, subscription.StatusActive, updated.Status)
	assert.Nil(t, updated.CancelledAt)
	assert.Nil(t, updated.EndDate)
	assert.True(t, updated.AutoRenew)
	assert.Equal(t, subscription.CycleYearly, resp.BillingCycle)
}

func TestSubscriptionService_ChangePlan_KeepsStatusAndStartDate(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionServiceTest(t)
	defer deps.db.Close()

	start := deps.clock.Now().Add(-10 * 24 * time.Hour)
	trialEnd := deps.clock.Now().Add(4 * 24 * time.Hour)
	existing := &subscription.Subscription{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		PlanID:         uuid.New(),
		Status:         subscription.StatusTrial,
		BillingCycle:   subscription.CycleMonthly,
		CurrentPrice:   49_00,
		StartDate:      start,
		TrialEndsAt:    &trialEnd,
	}
	deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
		return existing, nil
	}

	p := starterPlan()
	deps.planRepo.findByIDFn = func(ctx context.Context, id string) (*plan.Plan, error) {
		return p, nil
	}

	resp, err := deps.service.ChangePlan(ctx, existing.OrganizationID.String(), p.ID.String(), subscription.ChangePlanRequest{})

	assert.NoError(t, err)
	assert.Equal(t, subscription.StatusTrial, resp.Status)
	assert.Equal(t, subscription.CycleMonthly, resp.BillingCycle)
	assert.Equal(t, int64(99_00), resp.CurrentPrice)
	assert.Equal(t, start.Format(time.RFC3339), resp.StartDate)
	assert.NotNil(t, resp.TrialEndsAt)
}

func TestSubscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionServiceTest(t)
	defer deps.db.Close()

	existing := &subscription.Subscription{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		PlanID:         uuid.New(),
		Status:         subscription.StatusActive,
		BillingCycle:   subscription.CycleMonthly,
		AutoRenew:      true,
		StartDate:      deps.clock.Now(),
	}
	deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
		return existing, nil
	}

	resp, err := deps.service.Cancel(ctx, existing.OrganizationID.String())

	assert.NoError(t, err)
	assert.Equal(t, subscription.StatusCancelled, resp.Status)
	assert.False(t, resp.AutoRenew)
	assert.NotNil(t, resp.CancelledAt)
}

func TestSubscriptionService_CheckAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("no organization", func(t *testing.T) {
		deps := setupSubscriptionServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CheckAccess(ctx, "")
		assert.ErrorIs(t, err, subscriptionerrors.ErrNoOrganization)
	})

	t.Run("no subscription", func(t *testing.T) {
		deps := setupSubscriptionServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CheckAccess(ctx, uuid.NewString())
		assert.ErrorIs(t, err, subscriptionerrors.ErrNoActiveSubscription)
	})

	t.Run("cancelled subscription", func(t *testing.T) {
		deps := setupSubscriptionServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
			return &subscription.Subscription{
				ID:             uuid.New(),
				OrganizationID: uuid.New(),
				PlanID:         uuid.New(),
				Status:         subscription.StatusCancelled,
				StartDate:      deps.clock.Now(),
			}, nil
		}

		_, err := deps.service.CheckAccess(ctx, uuid.NewString())
		assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionInactive)
	})

	t.Run("trial within window", func(t *testing.T) {
		deps := setupSubscriptionServiceTest(t)
		defer deps.db.Close()

		trialEnd := deps.clock.Now().Add(time.Hour)
		deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
			return &subscription.Subscription{
				ID:             uuid.New(),
				OrganizationID: uuid.New(),
				PlanID:         uuid.New(),
				Status:         subscription.StatusTrial,
				StartDate:      deps.clock.Now(),
				TrialEndsAt:    &trialEnd,
			}, nil
		}

		resp, err := deps.service.CheckAccess(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Equal(t, subscription.StatusTrial, resp.Status)
	})

	t.Run("trial expired lazily", func(t *testing.T) {
		deps := setupSubscriptionServiceTest(t)
		defer deps.db.Close()

		trialEnd := deps.clock.Now().Add(time.Hour)
		deps.repo.findByOrganizationFn = func(ctx context.Context, organizationID string) (*subscription.Subscription, error) {
			return &subscription.Subscription{
				ID:             uuid.New(),
				OrganizationID: uuid.New(),
				PlanID:         uuid.New(),
				Status:         subscription.StatusTrial,
				StartDate:      deps.clock.Now(),
				TrialEndsAt:    &trialEnd,
			}, nil
		}

		deps.clock.Advance(2 * time.Hour)

		_, err := deps.service.CheckAccess(ctx, uuid.NewString())
		assert.ErrorIs(t, err, subscriptionerrors.ErrTrialExpired)
	})
}
