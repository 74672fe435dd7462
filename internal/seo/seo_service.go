package seo

import (
	"context"

	seoerrors "nupo-consult/internal/seo/errors"
	"nupo-consult/internal/shared/cache"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func CacheKey(page PageName) string {
	return "site:seo:" + string(page)
}

//go:generate mockgen -source=seo_service.go -destination=mock/seo_service_mock.go -package=mock
type Service interface {
	ForPage(ctx context.Context, page PageName) (*SettingsResponse, error)

	List(ctx context.Context) ([]SettingsResponse, error)
	GetByID(ctx context.Context, id string) (SettingsResponse, error)
	Create(ctx context.Context, req SettingsRequest) (SettingsResponse, error)
	Update(ctx context.Context, id string, req SettingsRequest) (SettingsResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cache  *cache.ReadThrough
	logger *zap.Logger
}

func NewService(repo Repository, cache *cache.ReadThrough, logger ...*zap.Logger) Service {
	l := zap.L().Named("seo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seo.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, seoerrors.ErrInvalidSettingsID
	}
	return id, nil
}

// ForPage returns nil when the page has no settings row.
func (s *service) ForPage(ctx context.Context, page PageName) (*SettingsResponse, error) {
	var out *SettingsResponse
	err := s.cache.Get(ctx, CacheKey(page), &out, func(ctx context.Context) (any, error) {
		row, err := s.repo.FindByPage(ctx, page)
		if dberr.IsNotFound(err) {
			return (*SettingsResponse)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		res := MapSettings(*row)
		return &res, nil
	})
	return out, err
}

func (s *service) List(ctx context.Context) ([]SettingsResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]SettingsResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, MapSettings(row))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SettingsResponse, error) {
	sid, err := parseID(id)
	if err != nil {
		return SettingsResponse{}, err
	}
	row, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}
	return MapSettings(*row), nil
}

func (s *service) Create(ctx context.Context, req SettingsRequest) (SettingsResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if !PageName(req.PageName).Valid() {
		return SettingsResponse{}, seoerrors.ErrInvalidPageName
	}
	row := &Settings{}
	req.apply(row)
	if err := s.repo.Create(ctx, row); err != nil {
		l.Warn("create seo settings failed", zap.String("page_name", req.PageName), zap.Error(err))
		return SettingsResponse{}, mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, CacheKey(row.PageName))
	return MapSettings(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req SettingsRequest) (SettingsResponse, error) {
	sid, err := parseID(id)
	if err != nil {
		return SettingsResponse{}, err
	}
	if !PageName(req.PageName).Valid() {
		return SettingsResponse{}, seoerrors.ErrInvalidPageName
	}
	row, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	previous := row.PageName
	req.apply(row)
	if err := s.repo.Save(ctx, row); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	s.cache.Invalidate(ctx, CacheKey(previous), CacheKey(row.PageName))
	return MapSettings(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	sid, err := parseID(id)
	if err != nil {
		return err
	}
	row, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return mapRepositoryError(err)
	}
	n, err := s.repo.Delete(ctx, sid)
	if err != nil {
		return err
	}
	if n == 0 {
		return seoerrors.ErrSettingsNotFound
	}

	s.cache.Invalidate(ctx, CacheKey(row.PageName))
	return nil
}
