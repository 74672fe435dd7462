package user_test

import (
	"context"
	"errors"
	"testing"

	"nupo-consult/internal/user"
	usererrors "nupo-consult/internal/user/errors"
	userMock "nupo-consult/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (user.Service, *userMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	return user.NewService(repo, zap.NewNop()), repo
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and normalises email", func(t *testing.T) {
		svc, repo := setupService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, "editor@nupo.test", u.Email)
				assert.Equal(t, "editor", u.Role)
				assert.True(t, u.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")))
				return nil
			})

		resp, err := svc.Create(ctx, user.CreateUserRequest{
			Name:     "Editor",
			Email:    "  Editor@NUPO.test ",
			Password: "s3cret-pass",
			Role:     "editor",
		})

		assert.NoError(t, err)
		assert.Equal(t, "editor@nupo.test", resp.Email)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, repo := setupService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("UNIQUE constraint failed: users.email"))

		_, err := svc.Create(ctx, user.CreateUserRequest{Name: "A", Email: "a@b.c", Password: "12345678", Role: "staff"})

		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupService(t)
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(&user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("cannot deactivate self", func(t *testing.T) {
		svc, _ := setupService(t)
		err := svc.ToggleStatus(ctx, id.String(), id.String(), false)
		assert.ErrorIs(t, err, usererrors.ErrCannotDeactivateSelf)
	})

	t.Run("deactivates another user", func(t *testing.T) {
		svc, repo := setupService(t)
		existing := &user.User{ID: id, IsActive: true}

		repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		repo.EXPECT().
			Update(ctx, existing).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.False(t, u.IsActive)
				return nil
			})

		assert.NoError(t, svc.ToggleStatus(ctx, uuid.NewString(), id.String(), false))
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)
	id := uuid.New()
	existing := &user.User{ID: id, Password: "old"}

	repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	repo.EXPECT().Update(ctx, existing).Return(nil)

	assert.NoError(t, svc.ResetPassword(ctx, id.String(), "brand-new-pass"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte("brand-new-pass")))
}
