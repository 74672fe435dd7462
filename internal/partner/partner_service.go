package partner

import (
	"context"

	"nupo-consult/internal/bootstrap"
	partnererrors "nupo-consult/internal/partner/errors"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var partnerActions = bulk.Actions{
	"make_featured":   bulk.Set(map[string]any{"is_featured": true}),
	"remove_featured": bulk.Set(map[string]any{"is_featured": false}),
	"activate":        bulk.Set(map[string]any{"is_active": true}),
	"deactivate":      bulk.Set(map[string]any{"is_active": false}),
}

//go:generate mockgen -source=partner_service.go -destination=mock/partner_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]PartnerResponse, int64, error)
	GetByID(ctx context.Context, id string) (PartnerResponse, error)
	Create(ctx context.Context, req PartnerRequest) (PartnerResponse, error)
	Update(ctx context.Context, id string, req PartnerRequest) (PartnerResponse, error)
	Delete(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)

	Active(ctx context.Context, limit int) ([]PartnerResponse, error)
}

type service struct {
	repo   Repository
	bulk   *bulk.Runner
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("partner.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("partner.service")
	}
	return &service{
		repo:   repo,
		bulk:   bulk.NewRunner(db, "partners", &Partner{}, partnerActions, audit, l),
		logger: l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, partnererrors.ErrInvalidPartnerID
	}
	return id, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]PartnerResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapPartners(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PartnerResponse, error) {
	pid, err := parseID(id)
	if err != nil {
		return PartnerResponse{}, err
	}
	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return PartnerResponse{}, mapRepositoryError(err)
	}
	return MapPartner(*p), nil
}

func applyRequest(req PartnerRequest, p *Partner) error {
	if err := req.apply(p); err != nil {
		return err
	}
	if req.Slug != "" || p.Slug == "" {
		p.Slug = slug.Make(req.Slug, req.Name)
	}
	if p.Slug == "" {
		return partnererrors.ErrInvalidSlug
	}
	return nil
}

func (s *service) Create(ctx context.Context, req PartnerRequest) (PartnerResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	p := &Partner{IsActive: true}
	if err := applyRequest(req, p); err != nil {
		return PartnerResponse{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		l.Warn("create partner failed", zap.String("slug", p.Slug), zap.Error(err))
		return PartnerResponse{}, mapRepositoryError(err)
	}
	return MapPartner(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req PartnerRequest) (PartnerResponse, error) {
	pid, err := parseID(id)
	if err != nil {
		return PartnerResponse{}, err
	}
	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return PartnerResponse{}, mapRepositoryError(err)
	}
	if err := applyRequest(req, p); err != nil {
		return PartnerResponse{}, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return PartnerResponse{}, mapRepositoryError(err)
	}
	return MapPartner(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, pid)
	if err != nil {
		return err
	}
	if n == 0 {
		return partnererrors.ErrPartnerNotFound
	}
	return nil
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}

func (s *service) Active(ctx context.Context, limit int) ([]PartnerResponse, error) {
	rows, err := s.repo.ListActive(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapPartners(rows), nil
}
