package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "hrms/internal/employee/errors"
	"hrms/internal/events"
	"hrms/internal/messaging/kafka"
	"hrms/internal/shared/contextutil"
	"hrms/internal/shared/pagination"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, organizationID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, organizationID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	clock  clockwork.Clock
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		clock:  clock,
		logger: zap.L().Named("employee.service"),
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("organization_id", organizationID),
		zap.String("employee_code", req.EmployeeCode),
	)

	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	status := req.EmploymentStatus
	if status == "" {
		status = StatusProbation
	}
	if !validEmploymentStatus(status) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmploymentStatus
	}

	if _, err := s.repo.FindByCode(ctx, organizationID, req.EmployeeCode, nil); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, err
	}

	emp := &Employee{
		ID:               uuid.New(),
		OrganizationID:   orgUUID,
		UserID:           uuid.MustParse(req.UserID),
		EmployeeCode:     req.EmployeeCode,
		Position:         req.Position,
		EmploymentStatus: status,
		Salary:           req.Salary,
		HireDate:         hireDate,
	}
	if req.DepartmentID != "" {
		deptID := uuid.MustParse(req.DepartmentID)
		emp.DepartmentID = &deptID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:      "employee.created",
			EmployeeID:     emp.ID.String(),
			OrganizationID: organizationID,
			OccurredAt:     s.clock.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}

		// Same transaction as the employee row: the event exists iff the
		// employee does.
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   emp.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("request_id", rid),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapToResponse(emp), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]EmployeeResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, organizationID, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]EmployeeResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (EmployeeResponse, error) {
	emp, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	emp, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmployeeCode != "" && req.EmployeeCode != emp.EmployeeCode {
		if _, err := s.repo.FindByCode(ctx, organizationID, req.EmployeeCode, &id); err == nil {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, err
		}
		emp.EmployeeCode = req.EmployeeCode
	}
	if req.DepartmentID != "" {
		deptID := uuid.MustParse(req.DepartmentID)
		emp.DepartmentID = &deptID
	}
	if req.Position != "" {
		emp.Position = req.Position
	}
	if req.EmploymentStatus != "" {
		if !validEmploymentStatus(req.EmploymentStatus) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmploymentStatus
		}
		emp.EmploymentStatus = req.EmploymentStatus
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(emp), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	emp, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, emp.ID.String())
}

func (s *service) findOne(ctx context.Context, organizationID, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func mapToResponse(emp *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               emp.ID.String(),
		OrganizationID:   emp.OrganizationID.String(),
		UserID:           emp.UserID.String(),
		EmployeeCode:     emp.EmployeeCode,
		Position:         emp.Position,
		EmploymentStatus: emp.EmploymentStatus,
		Salary:           emp.Salary,
		HireDate:         emp.HireDate.Format("2006-01-02"),
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
	}
	if emp.DepartmentID != nil {
		v := emp.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if emp.Department != nil {
		resp.DepartmentName = emp.Department.Name
	}
	if emp.User != nil {
		resp.FullName = emp.User.FullName()
		resp.Email = emp.User.Email
	}
	return resp
}
