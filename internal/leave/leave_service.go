package leave

import (
	"context"
	"errors"
	"math"
	"time"

	leaveerrors "hrms/internal/leave/errors"
	"hrms/internal/shared/pagination"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateType(ctx context.Context, organizationID string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetActiveTypes(ctx context.Context, organizationID string) ([]LeaveTypeResponse, error)
	UpdateType(ctx context.Context, organizationID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)

	CreateRequest(ctx context.Context, organizationID, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetAllRequests(ctx context.Context, organizationID string, params pagination.Params) ([]LeaveRequestResponse, int64, error)
	GetMyRequests(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]LeaveRequestResponse, int64, error)
	DecideRequest(ctx context.Context, organizationID, id, deciderID string, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
	CancelRequest(ctx context.Context, organizationID, id, employeeID string) (LeaveRequestResponse, error)
}

type service struct {
	repo   Repository
	clock  clockwork.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{repo: repo, clock: clock, logger: zap.L().Named("leave.service")}
}

func (s *service) CreateType(ctx context.Context, organizationID string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeaveTypeResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	if _, err := s.repo.FindTypeByName(ctx, organizationID, req.Name, nil); err == nil {
		return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveTypeResponse{}, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	lt := &LeaveType{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           req.Name,
		Description:    req.Description,
		MaxDaysPerYear: req.MaxDaysPerYear,
		IsPaid:         isPaid,
		IsActive:       true,
	}
	if err := s.repo.CreateType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave type created",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapTypeToResponse(lt), nil
}

func (s *service) GetActiveTypes(ctx context.Context, organizationID string) ([]LeaveTypeResponse, error) {
	rows, err := s.repo.FindActiveTypes(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	res := make([]LeaveTypeResponse, len(rows))
	for i := range rows {
		res[i] = mapTypeToResponse(&rows[i])
	}
	return res, nil
}

func (s *service) UpdateType(ctx context.Context, organizationID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	lt, err := s.repo.FindTypeByID(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}

	if req.Name != "" && req.Name != lt.Name {
		if _, err := s.repo.FindTypeByName(ctx, organizationID, req.Name, &id); err == nil {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, err
		}
		lt.Name = req.Name
	}
	if req.Description != "" {
		lt.Description = req.Description
	}
	if req.MaxDaysPerYear != nil {
		lt.MaxDaysPerYear = *req.MaxDaysPerYear
	}
	if req.IsPaid != nil {
		lt.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapTypeToResponse(lt), nil
}

func (s *service) CreateRequest(ctx context.Context, organizationID, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}

	lt, err := s.repo.FindTypeByID(ctx, organizationID, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return LeaveRequestResponse{}, err
	}

	lr := &LeaveRequest{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		EmployeeID:     empUUID,
		LeaveTypeID:    lt.ID,
		StartDate:      start,
		EndDate:        end,
		TotalDays:      countLeaveDays(start, end),
		Reason:         req.Reason,
		Status:         StatusPending,
	}
	if err := s.repo.CreateRequest(ctx, lr); err != nil {
		return LeaveRequestResponse{}, err
	}

	lr.LeaveType = lt
	s.logger.Info("leave request created",
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("total_days", lr.TotalDays),
	)
	return mapRequestToResponse(lr), nil
}

func (s *service) GetAllRequests(ctx context.Context, organizationID string, params pagination.Params) ([]LeaveRequestResponse, int64, error) {
	return s.listRequests(ctx, organizationID, "", params)
}

func (s *service) GetMyRequests(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]LeaveRequestResponse, int64, error) {
	return s.listRequests(ctx, organizationID, employeeID, params)
}

// DecideRequest is one-shot: only PENDING requests can be approved or
// rejected, and the decision stamps who decided and when.
func (s *service) DecideRequest(ctx context.Context, organizationID, id, deciderID string, req DecideLeaveRequestRequest) (LeaveRequestResponse, error) {
	lr, err := s.findRequest(ctx, organizationID, id)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	if lr.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestAlreadyDecided
	}

	decider, err := uuid.Parse(deciderID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	now := s.clock.Now().UTC()
	switch req.Status {
	case StatusApproved:
		lr.Status = StatusApproved
		lr.ApprovedBy = &decider
		lr.ApprovedAt = &now
	case StatusRejected:
		lr.Status = StatusRejected
		lr.RejectedBy = &decider
		lr.RejectedAt = &now
		lr.RejectionReason = req.RejectionReason
	}

	if err := s.repo.UpdateRequest(ctx, lr); err != nil {
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request decided",
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("status", lr.Status),
	)
	return mapRequestToResponse(lr), nil
}

func (s *service) CancelRequest(ctx context.Context, organizationID, id, employeeID string) (LeaveRequestResponse, error) {
	lr, err := s.findRequest(ctx, organizationID, id)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	if lr.EmployeeID.String() != employeeID {
		return LeaveRequestResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if lr.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestAlreadyDecided
	}

	lr.Status = StatusCancelled
	if err := s.repo.UpdateRequest(ctx, lr); err != nil {
		return LeaveRequestResponse{}, err
	}
	return mapRequestToResponse(lr), nil
}

func (s *service) listRequests(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]LeaveRequestResponse, int64, error) {
	rows, total, err := s.repo.FindRequests(ctx, organizationID, employeeID, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]LeaveRequestResponse, len(rows))
	for i := range rows {
		res[i] = mapRequestToResponse(&rows[i])
	}
	return res, total, nil
}

func (s *service) findRequest(ctx context.Context, organizationID, id string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}

	lr, err := s.repo.FindRequestByID(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveRequestNotFound
		}
		return nil, err
	}
	return lr, nil
}

// countLeaveDays counts calendar days inclusively: a request with equal start
// and end dates is one day.
func countLeaveDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

func mapTypeToResponse(lt *LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:             lt.ID.String(),
		OrganizationID: lt.OrganizationID.String(),
		Name:           lt.Name,
		Description:    lt.Description,
		MaxDaysPerYear: lt.MaxDaysPerYear,
		IsPaid:         lt.IsPaid,
		IsActive:       lt.IsActive,
	}
}

func mapRequestToResponse(lr *LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              lr.ID.String(),
		OrganizationID:  lr.OrganizationID.String(),
		EmployeeID:      lr.EmployeeID.String(),
		LeaveTypeID:     lr.LeaveTypeID.String(),
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		TotalDays:       lr.TotalDays,
		Reason:          lr.Reason,
		Status:          lr.Status,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.LeaveType != nil {
		resp.LeaveTypeName = lr.LeaveType.Name
	}
	if lr.ApprovedBy != nil {
		v := lr.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if lr.ApprovedAt != nil {
		v := lr.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if lr.RejectedBy != nil {
		v := lr.RejectedBy.String()
		resp.RejectedBy = &v
	}
	if lr.RejectedAt != nil {
		v := lr.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &v
	}
	return resp
}
