package attendance

import (
	"context"
	"errors"
	"math"
	"time"

	attendanceerrors "hrms/internal/attendance/errors"
	"hrms/internal/shared/pagination"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	lateCutoffHour = 9
	regularHours   = 8.0
)

type Service interface {
	ClockIn(ctx context.Context, organizationID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, organizationID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	TodayStatus(ctx context.Context, organizationID, employeeID string) (TodayStatusResponse, error)
	GetAll(ctx context.Context, organizationID, dateFilter string, params pagination.Params) ([]AttendanceResponse, int64, error)
	GetMine(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]AttendanceResponse, int64, error)
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
	return &service{repo: repo, clock: clock, logger: zap.L().Named("attendance.service")}
}

func (s *service) ClockIn(ctx context.Context, organizationID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	now := s.clock.Now()
	day := dayOf(now)

	if _, err := s.repo.FindByEmployeeAndDate(ctx, organizationID, employeeID, day); err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	// Strictly after 09:00:00 counts late; 09:00:00 sharp is on time.
	status := StatusPresent
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), lateCutoffHour, 0, 0, 0, now.Location())
	if now.After(cutoff) {
		status = StatusLate
	}

	att := &Attendance{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		EmployeeID:     empUUID,
		Date:           day,
		ClockInAt:      now,
		Status:         status,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, att); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("clock in",
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return mapToResponse(att), nil
}

func (s *service) ClockOut(ctx context.Context, organizationID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	now := s.clock.Now()
	day := dayOf(now)

	att, err := s.repo.FindByEmployeeAndDate(ctx, organizationID, employeeID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}
	if att.ClockOutAt != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	att.ClockOutAt = &now
	att.WorkHours = round2(now.Sub(att.ClockInAt).Hours())
	att.OvertimeHours = round2(math.Max(0, att.WorkHours-regularHours))
	if req.Notes != "" {
		att.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, att); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock out",
		zap.String("employee_id", employeeID),
		zap.Float64("work_hours", att.WorkHours),
		zap.Float64("overtime_hours", att.OvertimeHours),
	)
	return mapToResponse(att), nil
}

func (s *service) TodayStatus(ctx context.Context, organizationID, employeeID string) (TodayStatusResponse, error) {
	day := dayOf(s.clock.Now())

	att, err := s.repo.FindByEmployeeAndDate(ctx, organizationID, employeeID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TodayStatusResponse{}, nil
		}
		return TodayStatusResponse{}, err
	}

	resp := mapToResponse(att)
	return TodayStatusResponse{
		ClockedIn:  true,
		ClockedOut: att.ClockOutAt != nil,
		Attendance: &resp,
	}, nil
}

func (s *service) GetAll(ctx context.Context, organizationID, dateFilter string, params pagination.Params) ([]AttendanceResponse, int64, error) {
	var date *time.Time
	if dateFilter != "" {
		parsed, err := time.Parse("2006-01-02", dateFilter)
		if err != nil {
			return nil, 0, attendanceerrors.ErrInvalidDateFilter
		}
		date = &parsed
	}
	return s.list(ctx, organizationID, "", date, params)
}

func (s *service) GetMine(ctx context.Context, organizationID, employeeID string, params pagination.Params) ([]AttendanceResponse, int64, error) {
	return s.list(ctx, organizationID, employeeID, nil, params)
}

func (s *service) list(ctx context.Context, organizationID, employeeID string, date *time.Time, params pagination.Params) ([]AttendanceResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, organizationID, employeeID, date, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, total, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapToResponse(att *Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             att.ID.String(),
		OrganizationID: att.OrganizationID.String(),
		EmployeeID:     att.EmployeeID.String(),
		Date:           att.Date.Format("2006-01-02"),
		ClockInAt:      att.ClockInAt.Format(time.RFC3339),
		Status:         att.Status,
		WorkHours:      att.WorkHours,
		OvertimeHours:  att.OvertimeHours,
		Notes:          att.Notes,
	}
	if att.ClockOutAt != nil {
		v := att.ClockOutAt.Format(time.RFC3339)
		resp.ClockOutAt = &v
	}
	return resp
}
