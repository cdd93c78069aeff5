package auth

import (
	"context"
	"errors"

	autherrors "hrms/internal/auth/errors"
	"hrms/internal/organization"
	organizationerrors "hrms/internal/organization/errors"
	"hrms/internal/shared/slug"
	"hrms/internal/user"
	usererrors "hrms/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// EmployeeResolver looks up the employee id linked to a user, so the access
// token can carry it. Returns "" when the user has no employee record.
type EmployeeResolver func(ctx context.Context, userID string) (string, error)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	RegisterOrganization(ctx context.Context, req RegisterOrganizationRequest) (RegisterOrganizationResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenPair, error)
	Logout(ctx context.Context, userID string) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	userRepo  user.Repository
	orgRepo   organization.Repository
	employees EmployeeResolver
	clock     clockwork.Clock
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, userRepo user.Repository, orgRepo organization.Repository, employees EmployeeResolver, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{
		db:        db,
		repo:      repo,
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		employees: employees,
		clock:     clock,
		logger:    zap.L().Named("auth.service"),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      user.RoleEmployee,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return AuthResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID.String()))
	return AuthResponse{User: user.MapToResponse(u), Tokens: tokens}, nil
}

// RegisterOrganization creates the tenant and its first ADMIN in a single
// transaction; neither row exists without the other.
func (s *service) RegisterOrganization(ctx context.Context, req RegisterOrganizationRequest) (RegisterOrganizationResponse, error) {
	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return RegisterOrganizationResponse{}, err
	}

	orgSlug := slug.Make(req.OrganizationName)
	if _, err := s.orgRepo.FindBySlug(ctx, orgSlug, nil); err == nil {
		return RegisterOrganizationResponse{}, organizationerrors.ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RegisterOrganizationResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return RegisterOrganizationResponse{}, err
	}

	org := &organization.Organization{
		ID:       uuid.New(),
		Name:     req.OrganizationName,
		Slug:     orgSlug,
		Email:    &req.Email,
		IsActive: true,
	}
	orgID := org.ID
	u := &user.User{
		ID:             uuid.New(),
		Email:          req.Email,
		Password:       string(hash),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Role:           user.RoleAdmin,
		OrganizationID: &orgID,
		IsActive:       true,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return RegisterOrganizationResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.orgRepo.WithTx(tx).Create(ctx, org); err != nil {
		return RegisterOrganizationResponse{}, err
	}
	if err := s.userRepo.WithTx(tx).Create(ctx, u); err != nil {
		return RegisterOrganizationResponse{}, err
	}
	if err := tx.Commit().Error; err != nil {
		return RegisterOrganizationResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return RegisterOrganizationResponse{}, err
	}

	s.logger.Info("organization registered",
		zap.String("organization_id", org.ID.String()),
		zap.String("slug", org.Slug),
	)
	return RegisterOrganizationResponse{
		Organization: organizationSummary{ID: org.ID.String(), Name: org.Name, Slug: org.Slug},
		User:         user.MapToResponse(u),
		Tokens:       tokens,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrAccountInactive
	}

	now := s.clock.Now().UTC()
	u.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, u); err != nil {
		return AuthResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))
	return AuthResponse{User: user.MapToResponse(u), Tokens: tokens}, nil
}

// Refresh rotates the refresh token: the presented token must verify, still
// exist in storage, and not be past its stored expiry; it is then replaced.
func (s *service) Refresh(ctx context.Context, req RefreshRequest) (TokenPair, error) {
	userID, err := parseRefreshToken(req.RefreshToken)
	if err != nil || userID == "" {
		return TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	stored, err := s.repo.FindRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenPair{}, err
	}

	if s.clock.Now().After(stored.ExpiresAt) {
		_ = s.repo.DeleteRefreshToken(ctx, req.RefreshToken)
		return TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenPair{}, err
	}
	if !u.IsActive {
		return TokenPair{}, autherrors.ErrAccountInactive
	}

	if err := s.repo.DeleteRefreshToken(ctx, req.RefreshToken); err != nil {
		return TokenPair{}, err
	}
	return s.issueTokens(ctx, u)
}

func (s *service) Logout(ctx context.Context, userID string) error {
	return s.repo.DeleteRefreshTokensByUser(ctx, userID)
}

func (s *service) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return usererrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *service) issueTokens(ctx context.Context, u *user.User) (TokenPair, error) {
	now := s.clock.Now().UTC()

	employeeID := ""
	if s.employees != nil {
		id, err := s.employees(ctx, u.ID.String())
		if err == nil {
			employeeID = id
		}
	}

	access, err := issueAccessToken(u, employeeID, now)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, expiresAt, err := issueRefreshToken(u, now)
	if err != nil {
		return TokenPair{}, err
	}

	rt := &RefreshToken{
		ID:        uuid.New(),
		UserID:    u.ID,
		Token:     refresh,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.CreateRefreshToken(ctx, rt); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
