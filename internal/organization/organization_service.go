package organization

import (
	"context"
	"errors"

	organizationerrors "hrms/internal/organization/errors"
	"hrms/internal/shared/pagination"
	"hrms/internal/shared/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetAll(ctx context.Context, params pagination.Params) ([]OrganizationResponse, int64, error)
	GetByID(ctx context.Context, id string) (OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (OrganizationResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error) {
	orgSlug := req.Slug
	if orgSlug == "" {
		orgSlug = slug.Make(req.Name)
	}

	_, err := s.repo.FindBySlug(ctx, orgSlug, nil)
	if err == nil {
		return OrganizationResponse{}, organizationerrors.ErrSlugAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return OrganizationResponse{}, err
	}

	org := &Organization{
		ID:       uuid.New(),
		Name:     req.Name,
		Slug:     orgSlug,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Website:  req.Website,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*org), nil
}

func (s *service) GetAll(ctx context.Context, params pagination.Params) ([]OrganizationResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]OrganizationResponse, len(rows))
	for i, org := range rows {
		res[i] = mapToResponse(org)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrganizationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrganizationResponse{}, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}
	return mapToResponse(*org), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	org, err := s.findOne(ctx, id)
	if err != nil {
		return OrganizationResponse{}, err
	}

	if req.Slug != "" && req.Slug != org.Slug {
		_, err := s.repo.FindBySlug(ctx, req.Slug, &id)
		if err == nil {
			return OrganizationResponse{}, organizationerrors.ErrSlugAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationResponse{}, err
		}
		org.Slug = req.Slug
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.Email != nil {
		org.Email = req.Email
	}
	if req.Phone != nil {
		org.Phone = req.Phone
	}
	if req.Address != nil {
		org.Address = req.Address
	}
	if req.Website != nil {
		org.Website = req.Website
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*org), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.findOne(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleActive(ctx context.Context, id string) (OrganizationResponse, error) {
	org, err := s.findOne(ctx, id)
	if err != nil {
		return OrganizationResponse{}, err
	}

	org.IsActive = !org.IsActive
	if err := s.repo.Update(ctx, org); err != nil {
		return OrganizationResponse{}, err
	}
	return mapToResponse(*org), nil
}

func (s *service) findOne(ctx context.Context, id string) (*Organization, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationerrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}

func mapToResponse(org Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:       org.ID.String(),
		Name:     org.Name,
		Slug:     org.Slug,
		Email:    org.Email,
		Phone:    org.Phone,
		Address:  org.Address,
		Website:  org.Website,
		IsActive: org.IsActive,
	}
}
