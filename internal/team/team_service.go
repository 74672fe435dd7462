package team

import (
	"context"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/slug"
	teamerrors "nupo-consult/internal/team/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var memberActions = bulk.Actions{
	"make_featured":   bulk.Set(map[string]any{"is_featured": true}),
	"remove_featured": bulk.Set(map[string]any{"is_featured": false}),
	"activate":        bulk.Set(map[string]any{"is_active": true}),
	"deactivate":      bulk.Set(map[string]any{"is_active": false}),
}

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]TeamMemberResponse, int64, error)
	GetByID(ctx context.Context, id string) (TeamMemberResponse, error)
	Create(ctx context.Context, req TeamMemberRequest) (TeamMemberResponse, error)
	Update(ctx context.Context, id string, req TeamMemberRequest) (TeamMemberResponse, error)
	Delete(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)

	Active(ctx context.Context, limit int) ([]TeamMemberResponse, error)
	Featured(ctx context.Context, limit int) ([]TeamMemberResponse, error)
}

type service struct {
	repo   Repository
	bulk   *bulk.Runner
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{
		repo:   repo,
		bulk:   bulk.NewRunner(db, "team", &TeamMember{}, memberActions, audit, l),
		logger: l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, teamerrors.ErrInvalidMemberID
	}
	return id, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]TeamMemberResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapMembers(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TeamMemberResponse, error) {
	mid, err := parseID(id)
	if err != nil {
		return TeamMemberResponse{}, err
	}
	m, err := s.repo.FindByID(ctx, mid)
	if err != nil {
		return TeamMemberResponse{}, mapRepositoryError(err)
	}
	return MapMember(*m), nil
}

func applyRequest(req TeamMemberRequest, m *TeamMember) error {
	if !PositionType(req.PositionType).Valid() {
		return teamerrors.ErrInvalidPositionType
	}
	req.apply(m)
	if req.Slug != "" || m.Slug == "" {
		m.Slug = slug.Make(req.Slug, req.Name)
	}
	if m.Slug == "" {
		return teamerrors.ErrInvalidSlug
	}
	return nil
}

func (s *service) Create(ctx context.Context, req TeamMemberRequest) (TeamMemberResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	m := &TeamMember{IsActive: true}
	if err := applyRequest(req, m); err != nil {
		return TeamMemberResponse{}, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		l.Warn("create team member failed", zap.String("slug", m.Slug), zap.Error(err))
		return TeamMemberResponse{}, mapRepositoryError(err)
	}

	l.Info("team member created", zap.String("member_id", m.ID.String()))
	return MapMember(*m), nil
}

func (s *service) Update(ctx context.Context, id string, req TeamMemberRequest) (TeamMemberResponse, error) {
	mid, err := parseID(id)
	if err != nil {
		return TeamMemberResponse{}, err
	}
	m, err := s.repo.FindByID(ctx, mid)
	if err != nil {
		return TeamMemberResponse{}, mapRepositoryError(err)
	}
	if err := applyRequest(req, m); err != nil {
		return TeamMemberResponse{}, err
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return TeamMemberResponse{}, mapRepositoryError(err)
	}
	return MapMember(*m), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	mid, err := parseID(id)
	if err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, mid)
	if err != nil {
		return err
	}
	if n == 0 {
		return teamerrors.ErrMemberNotFound
	}
	return nil
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}

func (s *service) Active(ctx context.Context, limit int) ([]TeamMemberResponse, error) {
	rows, err := s.repo.ListActive(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapMembers(rows), nil
}

func (s *service) Featured(ctx context.Context, limit int) ([]TeamMemberResponse, error) {
	rows, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapMembers(rows), nil
}
