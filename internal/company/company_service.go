package company

import (
	"context"

	companyerrors "nupo-consult/internal/company/errors"
	"nupo-consult/internal/shared/cache"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/dberr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ContextCacheKey = "site:company:context"

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetContext(ctx context.Context) (Context, error)

	GetProfile(ctx context.Context) (ProfileResponse, error)
	CreateProfile(ctx context.Context, req ProfileRequest) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, req ProfileRequest) (ProfileResponse, error)

	GetStats(ctx context.Context) (StatsResponse, error)
	CreateStats(ctx context.Context, req StatsRequest) (StatsResponse, error)
	UpdateStats(ctx context.Context, req StatsRequest) (StatsResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	cache  *cache.ReadThrough
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, cache *cache.ReadThrough, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, cache: cache, logger: l}
}

func (s *service) GetContext(ctx context.Context) (Context, error) {
	var out Context
	err := s.cache.Get(ctx, ContextCacheKey, &out, func(ctx context.Context) (any, error) {
		return s.loadContext(ctx)
	})
	return out, err
}

func (s *service) loadContext(ctx context.Context) (Context, error) {
	var out Context

	profile, err := s.repo.GetProfile(ctx)
	switch {
	case err == nil:
		resp := mapProfile(profile)
		out.Profile = &resp
	case !dberr.IsNotFound(err):
		return Context{}, err
	}

	stats, err := s.repo.GetStats(ctx)
	switch {
	case err == nil:
		resp := mapStats(stats)
		out.Stats = &resp
	case !dberr.IsNotFound(err):
		return Context{}, err
	}

	return out, nil
}

func (s *service) GetProfile(ctx context.Context) (ProfileResponse, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return ProfileResponse{}, mapProfileError(err)
	}
	return mapProfile(p), nil
}

func (s *service) CreateProfile(ctx context.Context, req ProfileRequest) (ProfileResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ProfileResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n, err := qtx.CountProfiles(ctx)
	if err != nil {
		return ProfileResponse{}, err
	}
	if n > 0 {
		return ProfileResponse{}, companyerrors.ErrProfileAlreadyExists
	}

	p := &CompanyProfile{}
	req.apply(p)

	if err := qtx.CreateProfile(ctx, p); err != nil {
		l.Warn("create company profile failed", zap.Error(err))
		return ProfileResponse{}, mapProfileError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return ProfileResponse{}, err
	}

	s.cache.Invalidate(ctx, ContextCacheKey)
	l.Info("company profile created", zap.String("profile_id", p.ID.String()))
	return mapProfile(p), nil
}

func (s *service) UpdateProfile(ctx context.Context, req ProfileRequest) (ProfileResponse, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return ProfileResponse{}, mapProfileError(err)
	}

	req.apply(p)
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return ProfileResponse{}, mapProfileError(err)
	}

	s.cache.Invalidate(ctx, ContextCacheKey)
	return mapProfile(p), nil
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	st, err := s.repo.GetStats(ctx)
	if err != nil {
		return StatsResponse{}, mapStatsError(err)
	}
	return mapStats(st), nil
}

func (s *service) CreateStats(ctx context.Context, req StatsRequest) (StatsResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return StatsResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n, err := qtx.CountStats(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	if n > 0 {
		return StatsResponse{}, companyerrors.ErrStatsAlreadyExists
	}

	st := &CompanyStats{}
	req.apply(st)

	if err := qtx.CreateStats(ctx, st); err != nil {
		l.Warn("create company stats failed", zap.Error(err))
		return StatsResponse{}, mapStatsError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return StatsResponse{}, err
	}

	s.cache.Invalidate(ctx, ContextCacheKey)
	l.Info("company stats created", zap.String("stats_id", st.ID.String()))
	return mapStats(st), nil
}

func (s *service) UpdateStats(ctx context.Context, req StatsRequest) (StatsResponse, error) {
	st, err := s.repo.GetStats(ctx)
	if err != nil {
		return StatsResponse{}, mapStatsError(err)
	}

	req.apply(st)
	if err := s.repo.SaveStats(ctx, st); err != nil {
		return StatsResponse{}, mapStatsError(err)
	}

	s.cache.Invalidate(ctx, ContextCacheKey)
	return mapStats(st), nil
}
