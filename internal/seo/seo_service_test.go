package seo_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"nupo-consult/internal/seo"
	seoerrors "nupo-consult/internal/seo/errors"
	seoMock "nupo-consult/internal/seo/mock"
	"nupo-consult/internal/shared/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (seo.Service, *seoMock.MockRepository, redismock.ClientMock) {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := seoMock.NewMockRepository(ctrl)
	return seo.NewService(repo, cache.New(rdb, time.Minute, zap.NewNop()), zap.NewNop()), repo, redisMock
}

func TestService_ForPage(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		svc, _, redisMock := setupService(t)
		raw, _ := json.Marshal(seo.SettingsResponse{PageName: "home", MetaTitle: "NUPO Consult"})
		redisMock.ExpectGet(seo.CacheKey(seo.PageHome)).SetVal(string(raw))

		res, err := svc.ForPage(ctx, seo.PageHome)

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "NUPO Consult", res.MetaTitle)
	})

	t.Run("missing row is nil", func(t *testing.T) {
		svc, repo, redisMock := setupService(t)
		redisMock.ExpectGet(seo.CacheKey(seo.PageNews)).RedisNil()
		repo.EXPECT().FindByPage(gomock.Any(), seo.PageNews).Return(nil, gorm.ErrRecordNotFound)
		redisMock.Regexp().ExpectSet(seo.CacheKey(seo.PageNews), `null`, time.Minute).SetVal("OK")

		res, err := svc.ForPage(ctx, seo.PageNews)

		assert.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("redis down falls back to the database", func(t *testing.T) {
		svc, repo, redisMock := setupService(t)
		redisMock.ExpectGet(seo.CacheKey(seo.PageTeam)).SetErr(errors.New("dial tcp: refused"))
		repo.EXPECT().FindByPage(gomock.Any(), seo.PageTeam).Return(&seo.Settings{PageName: seo.PageTeam, RobotsMeta: "noindex"}, nil)
		redisMock.Regexp().ExpectSet(seo.CacheKey(seo.PageTeam), `.*`, time.Minute).SetErr(errors.New("dial tcp: refused"))

		res, err := svc.ForPage(ctx, seo.PageTeam)

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "noindex", res.RobotsMeta)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates the page key", func(t *testing.T) {
		svc, repo, redisMock := setupService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *seo.Settings) error {
				assert.Equal(t, seo.DefaultRobotsMeta, s.RobotsMeta)
				return nil
			})
		redisMock.ExpectDel(seo.CacheKey(seo.PageAbout)).SetVal(1)

		_, err := svc.Create(ctx, seo.SettingsRequest{PageName: "about", MetaTitle: "About us"})

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate page is a conflict", func(t *testing.T) {
		svc, repo, _ := setupService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Create(ctx, seo.SettingsRequest{PageName: "about"})
		assert.ErrorIs(t, err, seoerrors.ErrPageTaken)
	})

	t.Run("unknown page", func(t *testing.T) {
		svc, _, _ := setupService(t)
		_, err := svc.Create(ctx, seo.SettingsRequest{PageName: "blog"})
		assert.ErrorIs(t, err, seoerrors.ErrInvalidPageName)
	})
}

func TestService_UpdateRenamesInvalidatesBoth(t *testing.T) {
	ctx := context.Background()
	svc, repo, redisMock := setupService(t)
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(&seo.Settings{ID: id, PageName: seo.PageNews}, nil)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	redisMock.ExpectDel(seo.CacheKey(seo.PageNews), seo.CacheKey(seo.PageProjects)).SetVal(1)

	res, err := svc.Update(ctx, id.String(), seo.SettingsRequest{PageName: "projects"})

	assert.NoError(t, err)
	assert.Equal(t, "projects", res.PageName)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
