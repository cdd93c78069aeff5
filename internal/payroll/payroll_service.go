package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hrms/internal/employee"
	"hrms/internal/events"
	"hrms/internal/messaging/kafka"
	payrollerrors "hrms/internal/payroll/errors"
	"hrms/internal/shared/contextutil"
	"hrms/internal/shared/pagination"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, organizationID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]PayrollResponse, int64, error)
	GetByID(ctx context.Context, organizationID, id string) (PayrollResponse, error)
	UpdateItem(ctx context.Context, organizationID, payrollID, itemID string, req UpdatePayrollItemRequest) (PayrollItemResponse, error)
	Process(ctx context.Context, organizationID, id, processedBy string) (PayrollResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	clock        clockwork.Clock
	logger       *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employeeRepo employee.Repository, outbox kafka.OutboxRepository, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
		clock:        clock,
		logger:       zap.L().Named("payroll.service"),
	}
}

// Create snapshots every eligible employee into a DRAFT payroll. Each item
// starts as base salary only; adjustments come later through UpdateItem.
func (s *service) Create(ctx context.Context, organizationID string, req CreatePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll requested",
		zap.String("request_id", rid),
		zap.String("organization_id", organizationID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	if _, err := s.repo.FindByPeriod(ctx, organizationID, req.Month, req.Year); err == nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollPeriodExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollResponse{}, err
	}

	employees, err := s.employeeRepo.FindEligibleForPayroll(ctx, organizationID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if len(employees) == 0 {
		return PayrollResponse{}, payrollerrors.ErrNoEligibleEmployees
	}

	p := &Payroll{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Month:          req.Month,
		Year:           req.Year,
		Status:         StatusDraft,
		Items:          make([]PayrollItem, 0, len(employees)),
	}

	// Creation-time total is the sum of base salaries; Process recomputes it
	// from net salaries once adjustments are in.
	var total int64
	for _, emp := range employees {
		item := PayrollItem{
			ID:         uuid.New(),
			PayrollID:  p.ID,
			EmployeeID: emp.ID,
			BaseSalary: emp.Salary,
			NetSalary:  emp.Salary,
		}
		total += emp.Salary
		p.Items = append(p.Items, item)
	}
	p.TotalAmount = total

	if err := s.repo.Create(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("payroll created",
		zap.String("request_id", rid),
		zap.String("payroll_id", p.ID.String()),
		zap.Int("items", len(p.Items)),
		zap.Int64("total_amount", p.TotalAmount),
	)
	return mapToResponse(p, true), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]PayrollResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, organizationID, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]PayrollResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i], false)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (PayrollResponse, error) {
	p, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(p, true), nil
}

// UpdateItem adjusts one employee's pay while the payroll is still a draft.
// Absent fields keep their stored values; net salary is always recomputed.
func (s *service) UpdateItem(ctx context.Context, organizationID, payrollID, itemID string, req UpdatePayrollItemRequest) (PayrollItemResponse, error) {
	p, err := s.findOne(ctx, organizationID, payrollID)
	if err != nil {
		return PayrollItemResponse{}, err
	}
	if p.Status != StatusDraft {
		return PayrollItemResponse{}, payrollerrors.ErrPayrollNotDraft
	}

	item, err := s.repo.FindItem(ctx, payrollID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollItemResponse{}, payrollerrors.ErrPayrollItemNotFound
		}
		return PayrollItemResponse{}, err
	}

	if req.Overtime != nil {
		item.Overtime = *req.Overtime
	}
	if req.Bonus != nil {
		item.Bonus = *req.Bonus
	}
	if req.Deductions != nil {
		item.Deductions = *req.Deductions
	}
	if req.Tax != nil {
		item.Tax = *req.Tax
	}
	if req.SocialSecurity != nil {
		item.SocialSecurity = *req.SocialSecurity
	}
	item.NetSalary = item.computeNetSalary()

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return PayrollItemResponse{}, err
	}
	return mapItemToResponse(item), nil
}

// Process finalizes a draft payroll: total becomes the sum of net salaries,
// status flips to COMPLETED, and a payroll.processed event is queued in the
// same transaction.
func (s *service) Process(ctx context.Context, organizationID, id, processedBy string) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	p, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotDraft
	}

	processor, err := uuid.Parse(processedBy)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	total, err := s.repo.SumNetSalaries(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	now := s.clock.Now().UTC()
	p.Status = StatusCompleted
	p.TotalAmount = total
	p.ProcessedAt = &now
	p.ProcessedBy = &processor

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PayrollResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, p); err != nil {
		return PayrollResponse{}, err
	}

	if s.outbox != nil {
		event := events.PayrollProcessedEvent{
			EventType:      "payroll.processed",
			PayrollID:      p.ID.String(),
			OrganizationID: organizationID,
			ProcessedBy:    processedBy,
			TotalAmount:    total,
			OccurredAt:     now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll",
			AggregateID:   p.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollProcessedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("process payroll outbox persist failed",
				zap.String("request_id", rid),
				zap.Error(err),
			)
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll processed",
		zap.String("request_id", rid),
		zap.String("payroll_id", p.ID.String()),
		zap.Int64("total_amount", total),
	)
	return mapToResponse(p, false), nil
}

func (s *service) findOne(ctx context.Context, organizationID, id string) (*Payroll, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}
	return p, nil
}

func mapToResponse(p *Payroll, withItems bool) PayrollResponse {
	resp := PayrollResponse{
		ID:             p.ID.String(),
		OrganizationID: p.OrganizationID.String(),
		Month:          p.Month,
		Year:           p.Year,
		Status:         p.Status,
		TotalAmount:    p.TotalAmount,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.ProcessedAt != nil {
		v := p.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	if p.ProcessedBy != nil {
		v := p.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	if withItems {
		resp.Items = make([]PayrollItemResponse, len(p.Items))
		for i := range p.Items {
			resp.Items[i] = mapItemToResponse(&p.Items[i])
		}
	}
	return resp
}

func mapItemToResponse(item *PayrollItem) PayrollItemResponse {
	return PayrollItemResponse{
		ID:             item.ID.String(),
		PayrollID:      item.PayrollID.String(),
		EmployeeID:     item.EmployeeID.String(),
		BaseSalary:     item.BaseSalary,
		Overtime:       item.Overtime,
		Bonus:          item.Bonus,
		Deductions:     item.Deductions,
		Tax:            item.Tax,
		SocialSecurity: item.SocialSecurity,
		NetSalary:      item.NetSalary,
	}
}
