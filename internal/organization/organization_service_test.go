package organization_test

import (
	"context"
	"testing"

	"hrms/internal/organization"
	organizationerrors "hrms/internal/organization/errors"
	"hrms/internal/shared/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeOrganizationRepository struct {
	createFn     func(ctx context.Context, org *organization.Organization) error
	findAllFn    func(ctx context.Context, params pagination.Params) ([]organization.Organization, int64, error)
	findByIDFn   func(ctx context.Context, id string) (*organization.Organization, error)
	findBySlugFn func(ctx context.Context, slug string, excludeID *string) (*organization.Organization, error)
	updateFn     func(ctx context.Context, org *organization.Organization) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeOrganizationRepository) WithTx(tx *gorm.DB) organization.Repository {
	return f
}

func (f *fakeOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	if f.createFn != nil {
		return f.createFn(ctx, org)
	}
	return nil
}

func (f *fakeOrganizationRepository) FindAll(ctx context.Context, params pagination.Params) ([]organization.Organization, int64, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeOrganizationRepository) FindByID(ctx context.Context, id string) (*organization.Organization, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepository) FindBySlug(ctx context.Context, slug string, excludeID *string) (*organization.Organization, error) {
	if f.findBySlugFn != nil {
		return f.findBySlugFn(ctx, slug, excludeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, org)
	}
	return nil
}

func (f *fakeOrganizationRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func setupOrganizationServiceTest(t *testing.T) (*fakeOrganizationRepository, organization.Service) {
	t.Helper()
	repo := &fakeOrganizationRepository{}
	return repo, organization.NewService(repo)
}

func TestOrganizationService_Create_DerivesSlugFromName(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupOrganizationServiceTest(t)

	var created *organization.Organization
	repo.createFn = func(ctx context.Context, org *organization.Organization) error {
		created = org
		return nil
	}

	resp, err := svc.Create(ctx, organization.CreateOrganizationRequest{Name: "PT Maju Jaya"})

	assert.NoError(t, err)
	assert.Equal(t, "pt-maju-jaya", resp.Slug)
	assert.True(t, created.IsActive)
}

func TestOrganizationService_Create_KeepsExplicitSlug(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupOrganizationServiceTest(t)

	var checkedSlug string
	repo.findBySlugFn = func(ctx context.Context, slug string, excludeID *string) (*organization.Organization, error) {
		checkedSlug = slug
		return nil, gorm.ErrRecordNotFound
	}

	resp, err := svc.Create(ctx, organization.CreateOrganizationRequest{Name: "PT Maju Jaya", Slug: "maju"})

	assert.NoError(t, err)
	assert.Equal(t, "maju", resp.Slug)
	assert.Equal(t, "maju", checkedSlug)
}

func TestOrganizationService_Create_SlugConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupOrganizationServiceTest(t)

	repo.findBySlugFn = func(ctx context.Context, slug string, excludeID *string) (*organization.Organization, error) {
		return &organization.Organization{ID: uuid.New(), Slug: slug}, nil
	}

	_, err := svc.Create(ctx, organization.CreateOrganizationRequest{Name: "Acme"})

	assert.ErrorIs(t, err, organizationerrors.ErrSlugAlreadyExists)
}

func TestOrganizationService_Update_SlugConflictExcludesSelf(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupOrganizationServiceTest(t)

	org := &organization.Organization{ID: uuid.New(), Name: "Acme", Slug: "acme", IsActive: true}
	repo.findByIDFn = func(ctx context.Context, id string) (*organization.Organization, error) {
		return org, nil
	}

	var gotExclude *string
	repo.findBySlugFn = func(ctx context.Context, slug string, excludeID *string) (*organization.Organization, error) {
		gotExclude = excludeID
		return nil, gorm.ErrRecordNotFound
	}

	resp, err := svc.Update(ctx, org.ID.String(), organization.UpdateOrganizationRequest{Slug: "acme-hq"})

	assert.NoError(t, err)
	assert.Equal(t, "acme-hq", resp.Slug)
	assert.NotNil(t, gotExclude)
	assert.Equal(t, org.ID.String(), *gotExclude)
}

func TestOrganizationService_ToggleActive(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupOrganizationServiceTest(t)

	org := &organization.Organization{ID: uuid.New(), Name: "Acme", Slug: "acme", IsActive: true}
	repo.findByIDFn = func(ctx context.Context, id string) (*organization.Organization, error) {
		return org, nil
	}

	resp, err := svc.ToggleActive(ctx, org.ID.String())

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestOrganizationService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	_, svc := setupOrganizationServiceTest(t)

	_, err := svc.GetByID(ctx, uuid.NewString())

	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
}

func TestOrganizationService_GetByID_InvalidID(t *testing.T) {
	ctx := context.Background()
	_, svc := setupOrganizationServiceTest(t)

	_, err := svc.GetByID(ctx, "not-a-uuid")

	assert.ErrorIs(t, err, organizationerrors.ErrInvalidOrganizationID)
}
