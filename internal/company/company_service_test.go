package company_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"nupo-consult/internal/company"
	companyerrors "nupo-consult/internal/company/errors"
	companyMock "nupo-consult/internal/company/mock"
	"nupo-consult/internal/shared/cache"
	"nupo-consult/internal/shared/testdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   company.Service
	repo      *companyMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := testdb.NewMock(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := companyMock.NewMockRepository(ctrl)

	svc := company.NewService(db, repo, cache.New(rdb, 0, zap.NewNop()), zap.NewNop())

	return &serviceDeps{sqlMock: sqlMock, service: svc, repo: repo, redismock: redisMock}
}

func TestCompanyService_CreateProfile(t *testing.T) {
	ctx := context.Background()
	req := company.ProfileRequest{Name: "NUPO Consult Ltd", Email: "info@nupoconsult.rw"}

	t.Run("first profile is created", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountProfiles(ctx).Return(int64(0), nil)
		deps.repo.EXPECT().
			CreateProfile(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *company.CompanyProfile) error {
				assert.Equal(t, req.Name, p.Name)
				p.ID = uuid.New()
				return nil
			})
		deps.redismock.ExpectDel(company.ContextCacheKey).SetVal(1)

		res, err := deps.service.CreateProfile(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, req.Name, res.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("second profile is rejected by the count guard", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountProfiles(ctx).Return(int64(1), nil)

		_, err := deps.service.CreateProfile(ctx, req)

		assert.ErrorIs(t, err, companyerrors.ErrProfileAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique index backstop maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountProfiles(ctx).Return(int64(0), nil)
		deps.repo.EXPECT().CreateProfile(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_company_profiles_singleton"})

		_, err := deps.service.CreateProfile(ctx, req)

		assert.ErrorIs(t, err, companyerrors.ErrProfileAlreadyExists)
	})
}

func TestCompanyService_CreateStats(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	testdb.ExpectTx(deps.sqlMock, false)

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().CountStats(ctx).Return(int64(1), nil)

	_, err := deps.service.CreateStats(ctx, company.StatsRequest{YearsExperience: 12})

	assert.ErrorIs(t, err, companyerrors.ErrStatsAlreadyExists)
}

func TestCompanyService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("absent singleton is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetProfile(ctx).Return(&company.CompanyProfile{}, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateProfile(ctx, company.ProfileRequest{Name: "x"})
		assert.ErrorIs(t, err, companyerrors.ErrProfileNotFound)
	})

	t.Run("saves and invalidates the context cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &company.CompanyProfile{ID: uuid.New(), Name: "Old"}

		deps.repo.EXPECT().GetProfile(ctx).Return(existing, nil)
		deps.repo.EXPECT().SaveProfile(ctx, existing).Return(nil)
		deps.redismock.ExpectDel(company.ContextCacheKey).SetErr(errors.New("redis down"))

		res, err := deps.service.UpdateProfile(ctx, company.ProfileRequest{Name: "New"})

		assert.NoError(t, err, "cache failures are swallowed")
		assert.Equal(t, "New", res.Name)
	})
}

func TestCompanyService_GetContext(t *testing.T) {
	ctx := context.Background()

	t.Run("missing stats become nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, _ := testdb.NewMock(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(db, repo, cache.New(nil, 0, zap.NewNop()), zap.NewNop())

		repo.EXPECT().GetProfile(gomock.Any()).Return(&company.CompanyProfile{ID: uuid.New(), Name: "NUPO"}, nil)
		repo.EXPECT().GetStats(gomock.Any()).Return(&company.CompanyStats{}, gorm.ErrRecordNotFound)

		out, err := svc.GetContext(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "NUPO", out.Profile.Name)
		assert.Nil(t, out.Stats)
	})

	t.Run("served from redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal(company.Context{Stats: &company.StatsResponse{HappyClients: 67}})
		deps.redismock.ExpectGet(company.ContextCacheKey).SetVal(string(cached))

		out, err := deps.service.GetContext(ctx)

		assert.NoError(t, err)
		assert.Nil(t, out.Profile)
		assert.Equal(t, 67, out.Stats.HappyClients)
	})

	t.Run("database error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, _ := testdb.NewMock(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(db, repo, cache.New(nil, 0, zap.NewNop()), zap.NewNop())

		repo.EXPECT().GetProfile(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.GetContext(ctx)
		assert.Error(t, err)
	})
}
