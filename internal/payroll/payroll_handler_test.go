package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms/internal/payroll"
	payrollerrors "hrms/internal/payroll/errors"
	"hrms/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	CreateFn     func(ctx context.Context, organizationID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	GetAllFn     func(ctx context.Context, organizationID string, params pagination.Params) ([]payroll.PayrollResponse, int64, error)
	GetByIDFn    func(ctx context.Context, organizationID, id string) (payroll.PayrollResponse, error)
	UpdateItemFn func(ctx context.Context, organizationID, payrollID, itemID string, req payroll.UpdatePayrollItemRequest) (payroll.PayrollItemResponse, error)
	ProcessFn    func(ctx context.Context, organizationID, id, processedBy string) (payroll.PayrollResponse, error)
}

func (f *fakePayrollService) Create(ctx context.Context, organizationID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.CreateFn(ctx, organizationID, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]payroll.PayrollResponse, int64, error) {
	return f.GetAllFn(ctx, organizationID, params)
}

func (f *fakePayrollService) GetByID(ctx context.Context, organizationID, id string) (payroll.PayrollResponse, error) {
	return f.GetByIDFn(ctx, organizationID, id)
}

func (f *fakePayrollService) UpdateItem(ctx context.Context, organizationID, payrollID, itemID string, req payroll.UpdatePayrollItemRequest) (payroll.PayrollItemResponse, error) {
	return f.UpdateItemFn(ctx, organizationID, payrollID, itemID, req)
}

func (f *fakePayrollService) Process(ctx context.Context, organizationID, id, processedBy string) (payroll.PayrollResponse, error) {
	return f.ProcessFn(ctx, organizationID, id, processedBy)
}

func TestPayrollHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		organizationID := uuid.NewString()
		svc := &fakePayrollService{
			CreateFn: func(ctx context.Context, orgID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				assert.Equal(t, organizationID, orgID)
				assert.Equal(t, 7, req.Month)
				assert.Equal(t, 2026, req.Year)
				return payroll.PayrollResponse{ID: uuid.NewString(), Status: payroll.StatusDraft}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"month":7,"year":2026}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("organization_id", organizationID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("month out of range", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"month":13,"year":2026}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate period", func(t *testing.T) {
		svc := &fakePayrollService{
			CreateFn: func(ctx context.Context, orgID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrPayrollPeriodExists
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"month":7,"year":2026}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("organization_id", uuid.NewString())

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayrollHandler_Process(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes caller identity", func(t *testing.T) {
		userID := uuid.NewString()
		payrollID := uuid.NewString()
		svc := &fakePayrollService{
			ProcessFn: func(ctx context.Context, orgID, id, processedBy string) (payroll.PayrollResponse, error) {
				assert.Equal(t, payrollID, id)
				assert.Equal(t, userID, processedBy)
				return payroll.PayrollResponse{ID: id, Status: payroll.StatusCompleted}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/process", nil)
		c.Params = gin.Params{{Key: "id", Value: payrollID}}
		c.Set("organization_id", uuid.NewString())
		c.Set("user_id", userID)

		h.Process(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already processed", func(t *testing.T) {
		svc := &fakePayrollService{
			ProcessFn: func(ctx context.Context, orgID, id, processedBy string) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotDraft
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/x/process", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
		c.Set("organization_id", uuid.NewString())
		c.Set("user_id", uuid.NewString())

		h.Process(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestPayrollHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotItemID string
	svc := &fakePayrollService{
		UpdateItemFn: func(ctx context.Context, orgID, payrollID, itemID string, req payroll.UpdatePayrollItemRequest) (payroll.PayrollItemResponse, error) {
			gotItemID = itemID
			assert.NotNil(t, req.Bonus)
			assert.Equal(t, int64(50000), *req.Bonus)
			return payroll.PayrollItemResponse{ID: itemID}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	itemID := uuid.NewString()
	body := `{"bonus":50000}`
	c.Request = httptest.NewRequest(http.MethodPatch, "/payrolls/x/items/y", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}, {Key: "itemId", Value: itemID}}
	c.Set("organization_id", uuid.NewString())

	h.UpdateItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, itemID, gotItemID)
}
