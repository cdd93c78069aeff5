package user

import (
	"context"
	"errors"
	"time"

	"hrms/internal/shared/pagination"
	usererrors "hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("user.service")}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return UserResponse{}, usererrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		IsActive:  true,
	}
	if req.OrganizationID != "" {
		orgID, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID
		}
		u.OrganizationID = &orgID
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return MapToResponse(u), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, params pagination.Params) ([]UserResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, organizationID, params)
	if err != nil {
		return nil, 0, err
	}

	res := make([]UserResponse, len(rows))
	for i := range rows {
		res[i] = MapToResponse(&rows[i])
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.findOne(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return MapToResponse(u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.findOne(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Email != "" && req.Email != u.Email {
		if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
			return UserResponse{}, usererrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, err
		}
		u.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hash)
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Role != "" {
		u.Role = req.Role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.findOne(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleActive(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.findOne(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.IsActive = !u.IsActive
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}
	return MapToResponse(u), nil
}

func (s *service) findOne(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// MapToResponse is exported for the auth package, which returns the same user
// shape from login and register.
func MapToResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.OrganizationID != nil {
		v := u.OrganizationID.String()
		resp.OrganizationID = &v
	}
	if u.LastLoginAt != nil {
		v := u.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &v
	}
	return resp
}
