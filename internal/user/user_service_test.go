package user_test

import (
	"context"
	"testing"

	"hrms/internal/shared/pagination"
	"hrms/internal/user"
	usererrors "hrms/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	withTxFn      func(tx *gorm.DB) user.Repository
	createFn      func(ctx context.Context, u *user.User) error
	findAllFn     func(ctx context.Context, organizationID string, params pagination.Params) ([]user.User, int64, error)
	findByIDFn    func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
	updateFn      func(ctx context.Context, u *user.User) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeUserRepository) WithTx(tx *gorm.DB) user.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context, organizationID string, params pagination.Params) ([]user.User, int64, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, organizationID, params)
	}
	return nil, 0, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func setupUserServiceTest(t *testing.T) (*fakeUserRepository, user.Service) {
	t.Helper()
	repo := &fakeUserRepository{}
	return repo, user.NewService(repo)
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupUserServiceTest(t)

	var created *user.User
	repo.createFn = func(ctx context.Context, u *user.User) error {
		created = u
		return nil
	}

	orgID := uuid.NewString()
	resp, err := svc.Create(ctx, user.CreateUserRequest{
		Email:          "jo@acme.test",
		Password:       "s3cret-pass",
		FirstName:      "Jo",
		LastName:       "Doe",
		Role:           user.RoleHRManager,
		OrganizationID: orgID,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
	assert.True(t, created.IsActive)
	assert.Equal(t, orgID, *resp.OrganizationID)
	assert.Equal(t, user.RoleHRManager, resp.Role)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupUserServiceTest(t)

	repo.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		return &user.User{ID: uuid.New(), Email: email}, nil
	}

	_, err := svc.Create(ctx, user.CreateUserRequest{Email: "jo@acme.test", Password: "x", Role: user.RoleEmployee})

	assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupUserServiceTest(t)

	u := &user.User{ID: uuid.New(), Email: "old@acme.test", Role: user.RoleEmployee, IsActive: true}
	repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
		return u, nil
	}
	repo.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		return &user.User{ID: uuid.New(), Email: email}, nil
	}

	_, err := svc.Update(ctx, u.ID.String(), user.UpdateUserRequest{Email: "taken@acme.test"})

	assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Update_RehashesNewPassword(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupUserServiceTest(t)

	u := &user.User{ID: uuid.New(), Email: "jo@acme.test", Password: "old-hash", Role: user.RoleEmployee, IsActive: true}
	repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
		return u, nil
	}

	_, err := svc.Update(ctx, u.ID.String(), user.UpdateUserRequest{Password: "new-pass"})

	assert.NoError(t, err)
	assert.NotEqual(t, "old-hash", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-pass")))
}

func TestUserService_ToggleActive(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupUserServiceTest(t)

	u := &user.User{ID: uuid.New(), Email: "jo@acme.test", Role: user.RoleEmployee, IsActive: true}
	repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
		return u, nil
	}

	resp, err := svc.ToggleActive(ctx, u.ID.String())
	assert.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.ToggleActive(ctx, u.ID.String())
	assert.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestUserService_GetByID_InvalidID(t *testing.T) {
	ctx := context.Background()
	_, svc := setupUserServiceTest(t)

	_, err := svc.GetByID(ctx, "nope")

	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	_, svc := setupUserServiceTest(t)

	err := svc.Delete(ctx, uuid.NewString())

	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}
