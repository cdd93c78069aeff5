package department

import (
	"context"
	"errors"
	"time"

	departmenterrors "hrms/internal/department/errors"
	"hrms/internal/shared/pagination"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, organizationID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]DepartmentResponse, int64, error)
	GetByID(ctx context.Context, organizationID, id string) (DepartmentResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("department.service")}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateDepartmentRequest) (DepartmentResponse, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	if _, err := s.repo.FindByCode(ctx, organizationID, req.Code, nil); err == nil {
		return DepartmentResponse{}, departmenterrors.ErrCodeAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("department created",
		zap.String("department_id", dept.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return s.mapToResponse(ctx, dept), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]DepartmentResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, organizationID, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]DepartmentResponse, len(rows))
	for i := range rows {
		res[i] = s.mapToResponse(ctx, &rows[i])
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (DepartmentResponse, error) {
	dept, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return s.mapToResponse(ctx, dept), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	dept, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	if req.Code != "" && req.Code != dept.Code {
		if _, err := s.repo.FindByCode(ctx, organizationID, req.Code, &id); err == nil {
			return DepartmentResponse{}, departmenterrors.ErrCodeAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, err
		}
		dept.Code = req.Code
	}
	if req.Name != "" {
		dept.Name = req.Name
	}
	if req.Description != "" {
		dept.Description = req.Description
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(ctx, dept), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	dept, err := s.findOne(ctx, organizationID, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return departmenterrors.ErrDepartmentHasEmployees
	}

	return s.repo.Delete(ctx, dept.ID.String())
}

func (s *service) findOne(ctx context.Context, organizationID, id string) (*Department, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmenterrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return dept, nil
}

func (s *service) mapToResponse(ctx context.Context, dept *Department) DepartmentResponse {
	count, err := s.repo.CountEmployees(ctx, dept.ID.String())
	if err != nil {
		count = 0
	}
	return DepartmentResponse{
		ID:             dept.ID.String(),
		OrganizationID: dept.OrganizationID.String(),
		Name:           dept.Name,
		Code:           dept.Code,
		Description:    dept.Description,
		IsActive:       dept.IsActive,
		EmployeeCount:  count,
		CreatedAt:      dept.CreatedAt.Format(time.RFC3339),
	}
}
