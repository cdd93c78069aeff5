package subscription_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/internal/rbac"
	"hrms/internal/shared/pagination"
	"hrms/internal/subscription"
	subscriptionerrors "hrms/internal/subscription/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSubscriptionService struct {
	checkAccessFn func(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error)
}

func (f *fakeSubscriptionService) Subscribe(ctx context.Context, organizationID string, req subscription.SubscribeRequest) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) ChangePlan(ctx context.Context, organizationID, planID string, req subscription.ChangePlanRequest) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) Cancel(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) Current(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) GetAll(ctx context.Context, params pagination.Params) ([]subscription.SubscriptionResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeSubscriptionService) Update(ctx context.Context, id string, req subscription.UpdateSubscriptionRequest) (subscription.SubscriptionResponse, error) {
	return subscription.SubscriptionResponse{}, nil
}

func (f *fakeSubscriptionService) CheckAccess(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
	if f.checkAccessFn != nil {
		return f.checkAccessFn(ctx, organizationID)
	}
	return subscription.SubscriptionResponse{}, nil
}

func performGated(t *testing.T, svc subscription.Service, role, organizationID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/employees",
		func(c *gin.Context) {
			c.Set("role", role)
			c.Set("organization_id", organizationID)
		},
		subscription.Gate(svc),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/employees", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGate_AllowsActiveSubscription(t *testing.T) {
	svc := &fakeSubscriptionService{
		checkAccessFn: func(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
			return subscription.SubscriptionResponse{Status: subscription.StatusActive}, nil
		},
	}

	w := performGated(t, svc, rbac.RoleAdmin, "6cdd6786-6b40-4325-8bd7-4a0f20b2b976")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGate_SuperAdminBypassesCheck(t *testing.T) {
	called := false
	svc := &fakeSubscriptionService{
		checkAccessFn: func(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
			called = true
			return subscription.SubscriptionResponse{}, subscriptionerrors.ErrNoActiveSubscription
		},
	}

	w := performGated(t, svc, rbac.RoleSuperAdmin, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called, "gate must not consult subscriptions for platform operators")
}

func TestGate_BlocksWithoutSubscription(t *testing.T) {
	svc := &fakeSubscriptionService{
		checkAccessFn: func(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
			return subscription.SubscriptionResponse{}, subscriptionerrors.ErrNoActiveSubscription
		},
	}

	w := performGated(t, svc, rbac.RoleAdmin, "6cdd6786-6b40-4325-8bd7-4a0f20b2b976")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "does not have an active subscription")
}

func TestGate_BlocksExpiredTrial(t *testing.T) {
	svc := &fakeSubscriptionService{
		checkAccessFn: func(ctx context.Context, organizationID string) (subscription.SubscriptionResponse, error) {
			return subscription.SubscriptionResponse{}, subscriptionerrors.ErrTrialExpired
		},
	}

	w := performGated(t, svc, rbac.RoleAdmin, "6cdd6786-6b40-4325-8bd7-4a0f20b2b976")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "trial period has expired")
}
