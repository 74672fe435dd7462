package project

import (
	"context"
	"strings"
	"time"

	"nupo-consult/internal/bootstrap"
	projecterrors "nupo-consult/internal/project/errors"
	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/response"
	"nupo-consult/internal/shared/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ListingPageSize = 9
	relatedLimit    = 3
)

var projectActions = bulk.Actions{
	"make_featured":   bulk.Set(map[string]any{"is_featured": true}),
	"remove_featured": bulk.Set(map[string]any{"is_featured": false}),
	"make_public":     bulk.Set(map[string]any{"is_public": true}),
	"make_private":    bulk.Set(map[string]any{"is_public": false}),
}

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ProjectResponse, int64, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Create(ctx context.Context, req ProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, id string, req ProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)

	Listing(ctx context.Context, projectType string, status string, page int) (Listing, error)
	DetailBySlug(ctx context.Context, slug string) (Detail, error)
	Featured(ctx context.Context, limit int) ([]ProjectResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	bulk   *bulk.Runner
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		bulk:   bulk.NewRunner(db, "projects", &Project{}, projectActions, audit, l),
		logger: l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, projecterrors.ErrInvalidProjectID
	}
	return id, nil
}

// parseIDList collapses duplicates, keeping first-seen order.
func parseIDList(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apperror.ErrInvalidID
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, projecterrors.ErrInvalidDate
	}
	return &d, nil
}

func applyRequest(req ProjectRequest, p *Project) error {
	if !ProjectType(req.ProjectType).Valid() {
		return projecterrors.ErrInvalidProjectType
	}
	status := Status(req.Status)
	if req.Status == "" {
		status = StatusCompleted
	}
	if !status.Valid() {
		return projecterrors.ErrInvalidStatus
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	if start != nil && end != nil && end.Before(*start) {
		return projecterrors.ErrInvalidDateRange
	}
	if req.Budget != nil && req.Budget.IsNegative() {
		return projecterrors.ErrInvalidBudget
	}

	p.Name = req.Name
	if req.Slug != "" || p.Slug == "" {
		p.Slug = slug.Make(req.Slug, req.Name)
	}
	if p.Slug == "" {
		return projecterrors.ErrInvalidSlug
	}
	p.Client = req.Client
	p.ProjectType = ProjectType(req.ProjectType)
	p.Status = status
	p.Description = req.Description
	p.Location = req.Location
	p.StartDate = start
	p.EndDate = end
	if req.Budget != nil {
		b := req.Budget.Round(2)
		p.Budget = &b
	} else {
		p.Budget = nil
	}
	p.FeaturedImage = req.FeaturedImage
	p.GalleryImages = datatypes.JSONSlice[string](append([]string{}, req.GalleryImages...))
	p.IsFeatured = req.IsFeatured
	if req.IsPublic != nil {
		p.IsPublic = *req.IsPublic
	}
	return nil
}

// link replaces both relations, failing when any requested id is unknown.
func (s *service) link(ctx context.Context, qtx Repository, p *Project, req ProjectRequest) error {
	serviceIDs, err := parseIDList(req.ServiceIDs)
	if err != nil {
		return err
	}
	memberIDs, err := parseIDList(req.TeamMemberIDs)
	if err != nil {
		return err
	}

	services, err := qtx.FindServices(ctx, serviceIDs)
	if err != nil {
		return err
	}
	if len(services) != len(serviceIDs) {
		return projecterrors.ErrUnknownServices
	}
	members, err := qtx.FindTeamMembers(ctx, memberIDs)
	if err != nil {
		return err
	}
	if len(members) != len(memberIDs) {
		return projecterrors.ErrUnknownTeamMembers
	}

	if err := qtx.ReplaceServices(ctx, p, services); err != nil {
		return err
	}
	if err := qtx.ReplaceTeamMembers(ctx, p, members); err != nil {
		return err
	}
	p.ServicesProvided = services
	p.TeamMembers = members
	return nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ProjectResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapProjects(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	pid, err := parseID(id)
	if err != nil {
		return ProjectResponse{}, err
	}
	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return MapProject(*p), nil
}

func (s *service) Create(ctx context.Context, req ProjectRequest) (ProjectResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	p := &Project{IsPublic: true}
	if err := applyRequest(req, p); err != nil {
		return ProjectResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ProjectResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, p); err != nil {
		l.Warn("create project failed", zap.String("slug", p.Slug), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}
	if err := s.link(ctx, qtx, p, req); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return ProjectResponse{}, err
	}

	l.Info("project created", zap.String("project_id", p.ID.String()))
	return MapProject(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req ProjectRequest) (ProjectResponse, error) {
	pid, err := parseID(id)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ProjectResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByID(ctx, pid)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	if err := applyRequest(req, p); err != nil {
		return ProjectResponse{}, err
	}
	if err := qtx.Save(ctx, p); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	if err := s.link(ctx, qtx, p, req); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return ProjectResponse{}, err
	}
	return MapProject(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	n, err := s.repo.WithTx(tx).Delete(ctx, pid)
	if err != nil {
		return err
	}
	if n == 0 {
		return projecterrors.ErrProjectNotFound
	}
	return tx.Commit().Error
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}

func (s *service) Listing(ctx context.Context, projectType string, status string, page int) (Listing, error) {
	if page < 1 {
		page = 1
	}
	rows, total, err := s.repo.ListPublic(ctx, projectType, status, page, ListingPageSize)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		ProjectType: projectType,
		Status:      status,
		Projects:    MapProjects(rows),
		Meta:        response.NewPaginationMeta(total, page, ListingPageSize),
	}, nil
}

func (s *service) DetailBySlug(ctx context.Context, slug string) (Detail, error) {
	p, err := s.repo.FindPublicBySlug(ctx, slug)
	if err != nil {
		return Detail{}, mapRepositoryError(err)
	}
	related, err := s.repo.ListRelated(ctx, p.ProjectType, p.ID, relatedLimit)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Project: MapProject(*p), Related: MapProjects(related)}, nil
}

func (s *service) Featured(ctx context.Context, limit int) ([]ProjectResponse, error) {
	rows, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapProjects(rows), nil
}
