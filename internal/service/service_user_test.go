package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/mock"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Nop()), repo
}

func TestUserService_List_StripsPasswordHash(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindPage(ctx, 1, 20).
		Return([]models.User{
			{ID: "u1", Email: "a@example.com", PasswordHash: "secret-hash"},
			{ID: "u2", Email: "b@example.com", PasswordHash: "secret-hash"},
		}, 2, nil)

	users, total, err := svc.List(ctx, models.ListUsersQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash, "hashes must never leave the service layer")
	}
}

func TestUserService_List_InvalidWindow(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, _, err := svc.List(context.Background(), models.ListUsersQuery{Page: 0, Limit: 20})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, _, err = svc.List(context.Background(), models.ListUsersQuery{Page: 1, Limit: 500})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_GetByID(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindByID(ctx, "u1").
		Return(models.User{ID: "u1", Email: "a@example.com", PasswordHash: "secret-hash"}, nil)

	user, err := svc.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, "missing").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Create_Success(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	req := models.CreateUserRequest{Email: "new@example.com", Password: "password123"}

	repo.EXPECT().FindByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, req.Email, user.Email)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, req.Password, user.PasswordHash, "password must be hashed before storage")
			user.ID = "u1"
			return user, nil
		})

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "u1", created.ID)
	assert.Empty(t, created.PasswordHash)
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateUserRequest
	}{
		{name: "missing email", req: models.CreateUserRequest{Password: "password123"}},
		{name: "malformed email", req: models.CreateUserRequest{Email: "not-an-email", Password: "password123"}},
		{name: "short password", req: models.CreateUserRequest{Email: "a@example.com", Password: "short"}},
		{name: "missing password", req: models.CreateUserRequest{Email: "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUserService(t)
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	req := models.CreateUserRequest{Email: "taken@example.com", Password: "password123"}

	repo.EXPECT().FindByEmail(ctx, req.Email).Return(models.User{ID: "u1", Email: req.Email}, nil)

	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Create_ConstraintBackstop(t *testing.T) {
	// A concurrent signup can pass the lookup and still hit the unique
	// constraint; the repository error must surface as the same conflict.
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	req := models.CreateUserRequest{Email: "race@example.com", Password: "password123"}

	repo.EXPECT().FindByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Update_EmailChangeChecked(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	newEmail := "new@example.com"

	repo.EXPECT().FindByID(ctx, "u1").Return(models.User{ID: "u1", Email: "old@example.com"}, nil)
	repo.EXPECT().FindByEmail(ctx, newEmail).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().
		Update(ctx, "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.Email)
			assert.Equal(t, newEmail, *update.Email)
			assert.Nil(t, update.PasswordHash)
			return models.User{ID: id, Email: newEmail}, nil
		})

	updated, err := svc.Update(ctx, "u1", models.UpdateUserRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
}

func TestUserService_Update_SameEmailIsNoOp(t *testing.T) {
	// Re-submitting the current email changes nothing: no uniqueness lookup
	// and no write, just the current record back.
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	sameEmail := "old@example.com"

	repo.EXPECT().FindByID(ctx, "u1").Return(models.User{ID: "u1", Email: sameEmail, PasswordHash: "secret-hash"}, nil)

	updated, err := svc.Update(ctx, "u1", models.UpdateUserRequest{Email: &sameEmail})
	require.NoError(t, err)
	assert.Equal(t, sameEmail, updated.Email)
	assert.Empty(t, updated.PasswordHash)
}

func TestUserService_Update_EmptyRequestIsNoOp(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, "u1").Return(models.User{ID: "u1", Email: "old@example.com", PasswordHash: "secret-hash"}, nil)

	updated, err := svc.Update(ctx, "u1", models.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "old@example.com", updated.Email)
	assert.Empty(t, updated.PasswordHash)
}

func TestUserService_Update_PasswordHashed(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	newPassword := "brand-new-password"

	repo.EXPECT().FindByID(ctx, "u1").Return(models.User{ID: "u1", Email: "a@example.com"}, nil)
	repo.EXPECT().
		Update(ctx, "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.PasswordHash)
			assert.NotEqual(t, newPassword, *update.PasswordHash)
			return models.User{ID: id, Email: "a@example.com"}, nil
		})

	_, err := svc.Update(ctx, "u1", models.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
}

func TestUserService_Update_EmailTaken(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	takenEmail := "taken@example.com"

	repo.EXPECT().FindByID(ctx, "u1").Return(models.User{ID: "u1", Email: "old@example.com"}, nil)
	repo.EXPECT().FindByEmail(ctx, takenEmail).Return(models.User{ID: "u2", Email: takenEmail}, nil)

	_, err := svc.Update(ctx, "u1", models.UpdateUserRequest{Email: &takenEmail})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	email := "a@example.com"

	repo.EXPECT().FindByID(ctx, "missing").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Update(ctx, "missing", models.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "u1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "u1"))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "missing").Return(store.ErrUserNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), store.ErrUserNotFound)
}

func TestUserService_Delete_PropagatesStorageError(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	storageErr := errors.New("connection reset")

	repo.EXPECT().Delete(ctx, "u1").Return(storageErr)
	assert.ErrorIs(t, svc.Delete(ctx, "u1"), storageErr)
}
