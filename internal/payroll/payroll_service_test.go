package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"hrms/internal/employee"
	"hrms/internal/messaging/kafka"
	"hrms/internal/payroll"
	payrollerrors "hrms/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	withTxFn         func(tx *gorm.DB) payroll.Repository
	createFn         func(ctx context.Context, p *payroll.Payroll) error
	findByIDFn       func(ctx context.Context, organizationID, id string) (*payroll.Payroll, error)
	findByPeriodFn   func(ctx context.Context, organizationID string, month, year int) (*payroll.Payroll, error)
	findItemFn       func(ctx context.Context, payrollID, itemID string) (*payroll.PayrollItem, error)
	updateFn         func(ctx context.Context, p *payroll.Payroll) error
	updateItemFn     func(ctx context.Context, item *payroll.PayrollItem) error
	sumNetSalariesFn func(ctx context.Context, payrollID string) (int64, error)

	payroll.Repository
}

func (f *fakePayrollRepository) WithTx(tx *gorm.DB) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, organizationID, id string) (*payroll.Payroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, organizationID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindByPeriod(ctx context.Context, organizationID string, month, year int) (*payroll.Payroll, error) {
	if f.findByPeriodFn != nil {
		return f.findByPeriodFn(ctx, organizationID, month, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindItem(ctx context.Context, payrollID, itemID string) (*payroll.PayrollItem, error) {
	if f.findItemFn != nil {
		return f.findItemFn(ctx, payrollID, itemID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) UpdateItem(ctx context.Context, item *payroll.PayrollItem) error {
	if f.updateItemFn != nil {
		return f.updateItemFn(ctx, item)
	}
	return nil
}

func (f *fakePayrollRepository) SumNetSalaries(ctx context.Context, payrollID string) (int64, error) {
	if f.sumNetSalariesFn != nil {
		return f.sumNetSalariesFn(ctx, payrollID)
	}
	return 0, nil
}

type fakeEmployeeRepository struct {
	findEligibleForPayrollFn func(ctx context.Context, organizationID string) ([]employee.Employee, error)

	employee.Repository
}

func (f *fakeEmployeeRepository) FindEligibleForPayroll(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	if f.findEligibleForPayrollFn != nil {
		return f.findEligibleForPayrollFn(ctx, organizationID)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *gorm.DB) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error

	kafka.OutboxRepository
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

type payrollServiceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	repo         *fakePayrollRepository
	employeeRepo *fakeEmployeeRepository
	outbox       *fakeOutboxRepository
	clock        *clockwork.FakeClock
	service      payroll.Service
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	employeeRepo := &fakeEmployeeRepository{}
	outbox := &fakeOutboxRepository{}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 7, 31, 17, 0, 0, 0, time.UTC))
	svc := payroll.NewService(gormDB, repo, employeeRepo, outbox, clock)

	return &payrollServiceDeps{
		db:           db,
		sqlMock:      sqlMock,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
		clock:        clock,
		service:      svc,
	}
}

func TestPayrollService_Create_SnapshotsEligibleEmployees(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	emps := []employee.Employee{
		{ID: uuid.New(), Salary: 5_000_00},
		{ID: uuid.New(), Salary: 7_500_00},
		{ID: uuid.New(), Salary: 6_000_00},
	}
	deps.employeeRepo.findEligibleForPayrollFn = func(ctx context.Context, organizationID string) ([]employee.Employee, error) {
		return emps, nil
	}

	var created *payroll.Payroll
	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		created = p
		return nil
	}

	resp, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreatePayrollRequest{Month: 7, Year: 2026})

	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusDraft, resp.Status)
	assert.Equal(t, int64(18_500_00), resp.TotalAmount)
	assert.Len(t, resp.Items, 3)
	for i, item := range created.Items {
		assert.Equal(t, emps[i].ID, item.EmployeeID)
		assert.Equal(t, emps[i].Salary, item.BaseSalary)
		assert.Equal(t, emps[i].Salary, item.NetSalary)
	}
}

func TestPayrollService_Create_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByPeriodFn = func(ctx context.Context, organizationID string, month, year int) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: uuid.New(), Month: month, Year: year}, nil
	}

	_, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreatePayrollRequest{Month: 7, Year: 2026})

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollPeriodExists)
}

func TestPayrollService_Create_NoEligibleEmployees(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.employeeRepo.findEligibleForPayrollFn = func(ctx context.Context, organizationID string) ([]employee.Employee, error) {
		return []employee.Employee{}, nil
	}

	_, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreatePayrollRequest{Month: 7, Year: 2026})

	assert.ErrorIs(t, err, payrollerrors.ErrNoEligibleEmployees)
}

func TestPayrollService_UpdateItem_RecomputesNetSalary(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	p := &payroll.Payroll{ID: uuid.New(), OrganizationID: orgID, Status: payroll.StatusDraft}
	deps.repo.findByIDFn = func(ctx context.Context, organizationID, id string) (*payroll.Payroll, error) {
		return p, nil
	}

	item := &payroll.PayrollItem{
		ID:         uuid.New(),
		PayrollID:  p.ID,
		EmployeeID: uuid.New(),
		BaseSalary: 5_000_00,
		NetSalary:  5_000_00,
	}
	deps.repo.findItemFn = func(ctx context.Context, payrollID, itemID string) (*payroll.PayrollItem, error) {
		return item, nil
	}

	overtime := int64(300_00)
	bonus := int64(500_00)
	tax := int64(250_00)
	resp, err := deps.service.UpdateItem(ctx, orgID.String(), p.ID.String(), item.ID.String(), payroll.UpdatePayrollItemRequest{
		Overtime: &overtime,
		Bonus:    &bonus,
		Tax:      &tax,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5_550_00), resp.NetSalary)
	assert.Equal(t, int64(300_00), resp.Overtime)
	assert.Equal(t, int64(0), resp.Deductions)
}

func TestPayrollService_UpdateItem_RejectsCompletedPayroll(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	deps.repo.findByIDFn = func(ctx context.Context, organizationID, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: uuid.New(), OrganizationID: orgID, Status: payroll.StatusCompleted}, nil
	}

	_, err := deps.service.UpdateItem(ctx, orgID.String(), uuid.NewString(), uuid.NewString(), payroll.UpdatePayrollItemRequest{})

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotDraft)
}

func TestPayrollService_Process_CompletesAndQueuesEvent(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	p := &payroll.Payroll{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Month:          7,
		Year:           2026,
		Status:         payroll.StatusDraft,
		TotalAmount:    18_500_00,
	}
	deps.repo.findByIDFn = func(ctx context.Context, organizationID, id string) (*payroll.Payroll, error) {
		return p, nil
	}
	deps.repo.sumNetSalariesFn = func(ctx context.Context, payrollID string) (int64, error) {
		return 19_350_00, nil
	}

	var updated *payroll.Payroll
	deps.repo.updateFn = func(ctx context.Context, p *payroll.Payroll) error {
		updated = p
		return nil
	}
	var queued *kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		queued = &event
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	processedBy := uuid.NewString()
	resp, err := deps.service.Process(ctx, orgID.String(), p.ID.String(), processedBy)

	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusCompleted, resp.Status)
	assert.Equal(t, int64(19_350_00), resp.TotalAmount)
	assert.Equal(t, processedBy, *resp.ProcessedBy)
	assert.NotNil(t, updated)

	assert.NotNil(t, queued)
	assert.Equal(t, "payroll.processed", queued.EventType)
	assert.Equal(t, "payroll", queued.AggregateType)
	assert.Equal(t, p.ID.String(), queued.AggregateID)
	assert.Equal(t, kafka.OutboxStatusPending, queued.Status)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(queued.Payload, &payload))
	assert.Equal(t, float64(19_350_00), payload["total_amount"])

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Process_RollsBackWhenOutboxFails(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	deps.repo.findByIDFn = func(ctx context.Context, organizationID, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: uuid.New(), OrganizationID: orgID, Status: payroll.StatusDraft}, nil
	}
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		return assert.AnError
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Process(ctx, orgID.String(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Process_RejectsNonDraft(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	deps.repo.findByIDFn = func(ctx context.Context, organizationID, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: uuid.New(), OrganizationID: orgID, Status: payroll.StatusCompleted}, nil
	}

	_, err := deps.service.Process(ctx, orgID.String(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotDraft)
}
