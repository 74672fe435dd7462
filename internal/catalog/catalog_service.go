package catalog

import (
	"context"

	"nupo-consult/internal/bootstrap"
	catalogerrors "nupo-consult/internal/catalog/errors"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/dberr"
	"nupo-consult/internal/shared/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const relatedLimit = 3

var serviceActions = bulk.Actions{
	"make_featured":   bulk.Set(map[string]any{"is_featured": true}),
	"remove_featured": bulk.Set(map[string]any{"is_featured": false}),
	"activate":        bulk.Set(map[string]any{"is_active": true}),
	"deactivate":      bulk.Set(map[string]any{"is_active": false}),
}

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Catalog interface {
	ListCategories(ctx context.Context, filter CategoryFilter) ([]CategoryResponse, int64, error)
	GetCategory(ctx context.Context, id string) (CategoryResponse, error)
	CreateCategory(ctx context.Context, req CategoryRequest) (CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	ListServices(ctx context.Context, filter ServiceFilter) ([]ServiceResponse, int64, error)
	GetService(ctx context.Context, id string) (ServiceResponse, error)
	CreateService(ctx context.Context, req ServiceRequest) (ServiceResponse, error)
	UpdateService(ctx context.Context, id string, req ServiceRequest) (ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)

	Listing(ctx context.Context, search string) (Listing, error)
	DetailBySlug(ctx context.Context, slug string) (Detail, error)
	Featured(ctx context.Context, limit int) ([]ServiceResponse, error)
}

type catalog struct {
	db     *gorm.DB
	repo   Repository
	bulk   *bulk.Runner
	logger *zap.Logger
}

func NewCatalog(db *gorm.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Catalog {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &catalog{
		db:     db,
		repo:   repo,
		bulk:   bulk.NewRunner(db, "services", &Service{}, serviceActions, audit, l),
		logger: l,
	}
}

func parseID(raw string, invalid error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid
	}
	return id, nil
}

func (s *catalog) ListCategories(ctx context.Context, filter CategoryFilter) ([]CategoryResponse, int64, error) {
	rows, total, err := s.repo.ListCategories(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CategoryResponse, len(rows))
	for i, c := range rows {
		out[i] = mapCategory(c.ServiceCategory, c.ServiceCount)
	}
	return out, total, nil
}

func (s *catalog) GetCategory(ctx context.Context, id string) (CategoryResponse, error) {
	cid, err := parseID(id, catalogerrors.ErrInvalidCategoryID)
	if err != nil {
		return CategoryResponse{}, err
	}
	c, err := s.repo.FindCategoryByID(ctx, cid)
	if err != nil {
		return CategoryResponse{}, mapCategoryError(err)
	}
	return mapCategory(c.ServiceCategory, c.ServiceCount), nil
}

func (req CategoryRequest) apply(c *ServiceCategory) error {
	c.Name = req.Name
	if req.Slug != "" || c.Slug == "" {
		c.Slug = slug.Make(req.Slug, req.Name)
	}
	if c.Slug == "" {
		return catalogerrors.ErrInvalidSlug
	}
	c.Description = req.Description
	c.IconClass = req.IconClass
	c.SortOrder = req.SortOrder
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	return nil
}

func (s *catalog) CreateCategory(ctx context.Context, req CategoryRequest) (CategoryResponse, error) {
	c := &ServiceCategory{IsActive: true}
	if err := req.apply(c); err != nil {
		return CategoryResponse{}, err
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return CategoryResponse{}, mapCategoryError(err)
	}
	return mapCategory(*c, 0), nil
}

func (s *catalog) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (CategoryResponse, error) {
	cid, err := parseID(id, catalogerrors.ErrInvalidCategoryID)
	if err != nil {
		return CategoryResponse{}, err
	}
	found, err := s.repo.FindCategoryByID(ctx, cid)
	if err != nil {
		return CategoryResponse{}, mapCategoryError(err)
	}

	c := found.ServiceCategory
	if err := req.apply(&c); err != nil {
		return CategoryResponse{}, err
	}
	if err := s.repo.SaveCategory(ctx, &c); err != nil {
		return CategoryResponse{}, mapCategoryError(err)
	}
	return mapCategory(c, found.ServiceCount), nil
}

// DeleteCategory detaches the category's services before removing it.
func (s *catalog) DeleteCategory(ctx context.Context, id string) error {
	cid, err := parseID(id, catalogerrors.ErrInvalidCategoryID)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DetachCategory(ctx, cid); err != nil {
		return err
	}
	n, err := qtx.DeleteCategory(ctx, cid)
	if err != nil {
		return err
	}
	if n == 0 {
		return catalogerrors.ErrCategoryNotFound
	}
	return tx.Commit().Error
}

func (s *catalog) ListServices(ctx context.Context, filter ServiceFilter) ([]ServiceResponse, int64, error) {
	rows, total, err := s.repo.ListServices(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapServices(rows), total, nil
}

func (s *catalog) GetService(ctx context.Context, id string) (ServiceResponse, error) {
	sid, err := parseID(id, catalogerrors.ErrInvalidServiceID)
	if err != nil {
		return ServiceResponse{}, err
	}
	svc, err := s.repo.FindServiceByID(ctx, sid)
	if err != nil {
		return ServiceResponse{}, mapServiceError(err)
	}
	return mapService(*svc), nil
}

func (s *catalog) applyService(ctx context.Context, req ServiceRequest, svc *Service) error {
	svc.CategoryID = nil
	svc.Category = nil
	if req.CategoryID != nil && *req.CategoryID != "" {
		cid, err := parseID(*req.CategoryID, catalogerrors.ErrInvalidCategoryID)
		if err != nil {
			return err
		}
		c, err := s.repo.FindCategoryByID(ctx, cid)
		if dberr.IsNotFound(err) {
			return catalogerrors.ErrUnknownCategory
		}
		if err != nil {
			return err
		}
		svc.CategoryID = &cid
		svc.Category = &c.ServiceCategory
	}

	svc.Title = req.Title
	if req.Slug != "" || svc.Slug == "" {
		svc.Slug = slug.Make(req.Slug, req.Title)
	}
	if svc.Slug == "" {
		return catalogerrors.ErrInvalidSlug
	}
	svc.IconClass = req.IconClass
	svc.ShortDescription = req.ShortDescription
	svc.FullDescription = req.FullDescription
	svc.Features = datatypes.JSONSlice[string](append([]string{}, req.Features...))
	svc.PriceRange = req.PriceRange
	svc.Duration = req.Duration
	svc.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.SortOrder = req.SortOrder
	svc.MetaTitle = req.MetaTitle
	svc.MetaDescription = req.MetaDescription
	return nil
}

func (s *catalog) CreateService(ctx context.Context, req ServiceRequest) (ServiceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	svc := &Service{IsActive: true}
	if err := s.applyService(ctx, req, svc); err != nil {
		return ServiceResponse{}, err
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		l.Warn("create service failed", zap.String("slug", svc.Slug), zap.Error(err))
		return ServiceResponse{}, mapServiceError(err)
	}

	l.Info("service created", zap.String("service_id", svc.ID.String()))
	return mapService(*svc), nil
}

func (s *catalog) UpdateService(ctx context.Context, id string, req ServiceRequest) (ServiceResponse, error) {
	sid, err := parseID(id, catalogerrors.ErrInvalidServiceID)
	if err != nil {
		return ServiceResponse{}, err
	}
	svc, err := s.repo.FindServiceByID(ctx, sid)
	if err != nil {
		return ServiceResponse{}, mapServiceError(err)
	}

	if err := s.applyService(ctx, req, svc); err != nil {
		return ServiceResponse{}, err
	}
	if err := s.repo.SaveService(ctx, svc); err != nil {
		return ServiceResponse{}, mapServiceError(err)
	}
	return mapService(*svc), nil
}

func (s *catalog) DeleteService(ctx context.Context, id string) error {
	sid, err := parseID(id, catalogerrors.ErrInvalidServiceID)
	if err != nil {
		return err
	}
	n, err := s.repo.DeleteService(ctx, sid)
	if err != nil {
		return err
	}
	if n == 0 {
		return catalogerrors.ErrServiceNotFound
	}
	return nil
}

func (s *catalog) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}

func (s *catalog) Listing(ctx context.Context, search string) (Listing, error) {
	services, err := s.repo.ListActive(ctx, search)
	if err != nil {
		return Listing{}, err
	}
	categories, err := s.repo.ListActiveCategories(ctx)
	if err != nil {
		return Listing{}, err
	}

	out := Listing{
		Search:     search,
		Services:   mapServices(services),
		Categories: make([]CategoryResponse, len(categories)),
	}
	for i, c := range categories {
		out.Categories[i] = mapCategory(c.ServiceCategory, c.ServiceCount)
	}
	return out, nil
}

func (s *catalog) DetailBySlug(ctx context.Context, slug string) (Detail, error) {
	svc, err := s.repo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return Detail{}, mapServiceError(err)
	}

	out := Detail{Service: mapService(*svc), Related: []ServiceResponse{}}
	if svc.CategoryID == nil {
		return out, nil
	}

	related, err := s.repo.ListRelated(ctx, *svc.CategoryID, svc.ID, relatedLimit)
	if err != nil {
		return Detail{}, err
	}
	out.Related = mapServices(related)
	return out, nil
}

func (s *catalog) Featured(ctx context.Context, limit int) ([]ServiceResponse, error) {
	rows, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapServices(rows), nil
}
