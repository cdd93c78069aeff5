package plan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	planerrors "hrms/internal/plan/errors"
	"hrms/internal/shared/pagination"
	"hrms/internal/shared/slug"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivePlansCacheKey caches the public pricing-page listing. The key is
// global, not per tenant: active plans are platform-wide data.
const ActivePlansCacheKey = "plans:active"

type Service interface {
	Create(ctx context.Context, req CreatePlanRequest) (PlanResponse, error)
	GetAll(ctx context.Context, params pagination.Params) ([]PlanResponse, int64, error)
	GetAllActive(ctx context.Context) ([]PlanResponse, error)
	GetByID(ctx context.Context, id string) (PlanResponse, error)
	Update(ctx context.Context, id string, req UpdatePlanRequest) (PlanResponse, error)
	Remove(ctx context.Context, id string) (archived bool, err error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("plan.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreatePlanRequest) (PlanResponse, error) {
	planSlug := req.Slug
	if planSlug == "" {
		planSlug = slug.Make(req.Name)
	}

	_, err := s.repo.FindByNameOrSlug(ctx, req.Name, planSlug, nil)
	if err == nil {
		return PlanResponse{}, planerrors.ErrPlanNameOrSlugTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PlanResponse{}, err
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return PlanResponse{}, err
	}

	p := &Plan{
		ID:             uuid.New(),
		Name:           req.Name,
		Slug:           planSlug,
		Description:    req.Description,
		MonthlyPrice:   req.MonthlyPrice,
		YearlyPrice:    req.YearlyPrice,
		TrialDays:      req.TrialDays,
		MaxEmployees:   req.MaxEmployees,
		MaxDepartments: req.MaxDepartments,
		MaxHRStaff:     req.MaxHRStaff,
		Features:       datatypes.JSON(featuresJSON),
		Status:         StatusActive,
		SortOrder:      req.SortOrder,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return PlanResponse{}, err
	}

	s.invalidateActiveCache(ctx)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, params pagination.Params) ([]PlanResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(rows), total, nil
}

// GetAllActive backs the unauthenticated pricing listing, so it reads
// through Redis and collapses concurrent cache misses with singleflight.
func (s *service) GetAllActive(ctx context.Context) ([]PlanResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActivePlansCacheKey).Result(); err == nil {
			var resp []PlanResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActivePlansCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ActivePlansCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]PlanResponse), nil
}

func (s *service) invalidateActiveCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActivePlansCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate active plans cache",
			zap.String("key", ActivePlansCacheKey),
			zap.Error(err),
		)
	}
}

func (s *service) GetByID(ctx context.Context, id string) (PlanResponse, error) {
	p, err := s.findOne(ctx, id)
	if err != nil {
		return PlanResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePlanRequest) (PlanResponse, error) {
	p, err := s.findOne(ctx, id)
	if err != nil {
		return PlanResponse{}, err
	}

	if req.Name != "" || req.Slug != "" {
		name := req.Name
		if name == "" {
			name = p.Name
		}
		planSlug := req.Slug
		if planSlug == "" && req.Name != "" {
			planSlug = slug.Make(req.Name)
		}
		if planSlug == "" {
			planSlug = p.Slug
		}

		_, err := s.repo.FindByNameOrSlug(ctx, name, planSlug, &id)
		if err == nil {
			return PlanResponse{}, planerrors.ErrPlanNameOrSlugTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return PlanResponse{}, err
		}

		p.Name = name
		p.Slug = planSlug
	}

	if req.Description != nil {
		p.Description = req.Description
	}
	if req.MonthlyPrice != nil {
		p.MonthlyPrice = *req.MonthlyPrice
	}
	if req.YearlyPrice != nil {
		p.YearlyPrice = *req.YearlyPrice
	}
	if req.TrialDays != nil {
		p.TrialDays = *req.TrialDays
	}
	if req.MaxEmployees != nil {
		p.MaxEmployees = *req.MaxEmployees
	}
	if req.MaxDepartments != nil {
		p.MaxDepartments = *req.MaxDepartments
	}
	if req.MaxHRStaff != nil {
		p.MaxHRStaff = *req.MaxHRStaff
	}
	if req.Features != nil {
		featuresJSON, err := json.Marshal(req.Features)
		if err != nil {
			return PlanResponse{}, err
		}
		p.Features = datatypes.JSON(featuresJSON)
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return PlanResponse{}, err
	}

	s.invalidateActiveCache(ctx)
	return mapToResponse(*p), nil
}

// Remove archives a plan still referenced by subscriptions instead of
// deleting it, so historical billing rows keep a valid plan to point at.
func (s *service) Remove(ctx context.Context, id string) (bool, error) {
	p, err := s.findOne(ctx, id)
	if err != nil {
		return false, err
	}

	refs, err := s.repo.CountSubscriptions(ctx, id)
	if err != nil {
		return false, err
	}

	if refs > 0 {
		p.Status = StatusArchived
		if err := s.repo.Update(ctx, p); err != nil {
			return false, err
		}
		s.invalidateActiveCache(ctx)
		return true, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}

	s.invalidateActiveCache(ctx)
	return false, nil
}

func (s *service) findOne(ctx context.Context, id string) (*Plan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, planerrors.ErrInvalidPlanID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, planerrors.ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func mapToResponse(p Plan) PlanResponse {
	var features []string
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}
	if features == nil {
		features = []string{}
	}

	return PlanResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		MonthlyPrice:   p.MonthlyPrice,
		YearlyPrice:    p.YearlyPrice,
		TrialDays:      p.TrialDays,
		MaxEmployees:   p.MaxEmployees,
		MaxDepartments: p.MaxDepartments,
		MaxHRStaff:     p.MaxHRStaff,
		Features:       features,
		Status:         p.Status,
		SortOrder:      p.SortOrder,
	}
}

func mapToListResponse(rows []Plan) []PlanResponse {
	res := make([]PlanResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res
}
