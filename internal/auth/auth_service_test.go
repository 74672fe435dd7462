package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nupo-consult/internal/auth"
	autherrors "nupo-consult/internal/auth/errors"
	"nupo-consult/internal/shared/config"
	"nupo-consult/internal/user"
	userMock "nupo-consult/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var testAuthConfig = config.AuthConfig{
	JWTSecret:       testSecret,
	AccessTokenTTL:  15 * time.Minute,
	RefreshTokenTTL: 7 * 24 * time.Hour,
}

func newTestUser(t *testing.T, password string, active bool) *user.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Name:     "Admin",
		Email:    "admin@nupo.test",
		Password: string(hashed),
		Role:     "admin",
		IsActive: active,
	}
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	assert.NoError(t, err)
	return parsed.Claims.(jwt.MapClaims)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())
		u := newTestUser(t, "password123", true)

		repo.EXPECT().FindByEmail(ctx, "admin@nupo.test").Return(u, nil)
		repo.EXPECT().TouchLastLogin(ctx, u.ID, gomock.Any()).Return(nil)

		pair, resp, err := svc.Login(ctx, " Admin@nupo.test", "password123")

		assert.NoError(t, err)
		assert.Equal(t, u.ID.String(), resp.ID)
		assert.Equal(t, "admin", resp.Role)

		claims := parseClaims(t, pair.AccessToken)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, "admin", claims["role"])
		assert.Nil(t, claims["typ"])

		assert.Equal(t, "refresh", parseClaims(t, pair.RefreshToken)["typ"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())

		repo.EXPECT().FindByEmail(ctx, "admin@nupo.test").Return(newTestUser(t, "password123", true), nil)

		_, _, err := svc.Login(ctx, "admin@nupo.test", "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())

		repo.EXPECT().FindByEmail(ctx, "ghost@nupo.test").Return(&user.User{}, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(ctx, "ghost@nupo.test", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Inactive User", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())

		repo.EXPECT().FindByEmail(ctx, "admin@nupo.test").Return(newTestUser(t, "password123", false), nil)

		_, _, err := svc.Login(ctx, "admin@nupo.test", "password123")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})

	t.Run("Database Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())
		dbErr := errors.New("connection refused")

		repo.EXPECT().FindByEmail(ctx, "admin@nupo.test").Return(nil, dbErr)

		_, _, err := svc.Login(ctx, "admin@nupo.test", "password123")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())
		u := newTestUser(t, "password123", true)

		repo.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		repo.EXPECT().TouchLastLogin(ctx, u.ID, gomock.Any()).Return(nil)
		pair, _, err := svc.Login(ctx, u.Email, "password123")
		assert.NoError(t, err)

		repo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		next, resp, err := svc.RefreshToken(ctx, pair.RefreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, next.AccessToken)
		assert.Equal(t, u.Email, resp.Email)
	})

	t.Run("Access Token Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())

		access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.NewString(),
			"role":    "admin",
			"exp":     time.Now().Add(time.Minute).Unix(),
		})
		signed, _ := access.SignedString([]byte(testSecret))

		_, _, err := svc.RefreshToken(ctx, signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("Expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testAuthConfig, zap.NewNop())

		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.NewString(),
			"typ":     "refresh",
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})
		signed, _ := expired.SignedString([]byte(testSecret))

		_, _, err := svc.RefreshToken(ctx, signed)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("Garbage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := auth.NewService(userMock.NewMockRepository(ctrl), testAuthConfig, zap.NewNop())

		_, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo, testAuthConfig, zap.NewNop())

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := svc.GetMe(ctx, "abc")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("Found", func(t *testing.T) {
		u := newTestUser(t, "x", true)
		repo.EXPECT().FindByID(ctx, u.ID).Return(u, nil)

		resp, err := svc.GetMe(ctx, u.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, u.Name, resp.Name)
	})
}
