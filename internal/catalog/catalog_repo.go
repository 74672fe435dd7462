package catalog

import (
	"context"
	"strings"

	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=catalog_repo.go -destination=mock/catalog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateCategory(ctx context.Context, c *ServiceCategory) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryWithCount, error)
	ListCategories(ctx context.Context, filter CategoryFilter) ([]CategoryWithCount, int64, error)
	ListActiveCategories(ctx context.Context) ([]CategoryWithCount, error)
	SaveCategory(ctx context.Context, c *ServiceCategory) error
	DetachCategory(ctx context.Context, categoryID uuid.UUID) error
	DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error)

	CreateService(ctx context.Context, s *Service) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*Service, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]Service, int64, error)
	SaveService(ctx context.Context, s *Service) error
	DeleteService(ctx context.Context, id uuid.UUID) (int64, error)

	ListActive(ctx context.Context, search string) ([]Service, error)
	ListFeatured(ctx context.Context, limit int) ([]Service, error)
	FindActiveBySlug(ctx context.Context, slug string) (*Service, error)
	ListRelated(ctx context.Context, categoryID uuid.UUID, excludeID uuid.UUID, limit int) ([]Service, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

const (
	serviceCountAll    = "(SELECT COUNT(*) FROM services WHERE services.category_id = service_categories.id) AS service_count"
	serviceCountActive = "(SELECT COUNT(*) FROM services WHERE services.category_id = service_categories.id AND services.is_active = ?) AS service_count"
	serviceOrder       = "services.sort_order ASC, services.title ASC"
	categoryOrder      = "service_categories.sort_order ASC, service_categories.name ASC"
)

func (r *repository) CreateCategory(ctx context.Context, c *ServiceCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryWithCount, error) {
	var c CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&ServiceCategory{}).
		Select("service_categories.*, "+serviceCountAll).
		Where("service_categories.id = ?", id).
		Take(&c).Error
	return &c, err
}

func (r *repository) categoryFilter(ctx context.Context, filter CategoryFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&ServiceCategory{})
	if filter.IsActive != nil {
		q = q.Where("service_categories.is_active = ?", *filter.IsActive)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("LOWER(service_categories.name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	return q
}

func (r *repository) ListCategories(ctx context.Context, filter CategoryFilter) ([]CategoryWithCount, int64, error) {
	var total int64
	if err := r.categoryFilter(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []CategoryWithCount
	err := r.categoryFilter(ctx, filter).
		Select("service_categories.*, " + serviceCountAll).
		Order(categoryOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListActiveCategories(ctx context.Context) ([]CategoryWithCount, error) {
	var rows []CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&ServiceCategory{}).
		Select("service_categories.*, "+serviceCountActive, true).
		Where("service_categories.is_active = ?", true).
		Order(categoryOrder).
		Find(&rows).Error
	return rows, err
}

func (r *repository) SaveCategory(ctx context.Context, c *ServiceCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DetachCategory(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Service{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}

func (r *repository) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&ServiceCategory{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateService(ctx context.Context, s *Service) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *repository) FindServiceByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	var s Service
	err := r.db.WithContext(ctx).Preload("Category").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) ListServices(ctx context.Context, filter ServiceFilter) ([]Service, int64, error) {
	q := r.db.WithContext(ctx).Model(&Service{})
	if filter.CategoryID != "" {
		q = q.Where("services.category_id = ?", filter.CategoryID)
	}
	if filter.IsActive != nil {
		q = q.Where("services.is_active = ?", *filter.IsActive)
	}
	if filter.IsFeatured != nil {
		q = q.Where("services.is_featured = ?", *filter.IsFeatured)
	}
	q = r.search(q, filter.Search)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Service
	err := q.Preload("Category").
		Order(serviceOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) SaveService(ctx context.Context, s *Service) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *repository) DeleteService(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Service{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// search matches title, short description or category name, ignoring case.
func (r *repository) search(q *gorm.DB, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return q
	}
	like := "%" + strings.ToLower(term) + "%"
	categories := r.db.Model(&ServiceCategory{}).
		Select("id").
		Where("LOWER(name) LIKE ?", like)
	return q.Where(
		"LOWER(services.title) LIKE ? OR LOWER(services.short_description) LIKE ? OR services.category_id IN (?)",
		like, like, categories,
	)
}

func (r *repository) ListActive(ctx context.Context, search string) ([]Service, error) {
	q := r.db.WithContext(ctx).Model(&Service{}).Scopes(scope.Active)
	q = r.search(q, search)

	var rows []Service
	err := q.Preload("Category").Order(serviceOrder).Find(&rows).Error
	return rows, err
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]Service, error) {
	var rows []Service
	err := r.db.WithContext(ctx).
		Scopes(scope.Active, scope.Featured, scope.Limit(limit)).
		Preload("Category").
		Order(serviceOrder).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveBySlug(ctx context.Context, slug string) (*Service, error) {
	var s Service
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		Preload("Category").
		Where("slug = ?", slug).
		First(&s).Error
	return &s, err
}

func (r *repository) ListRelated(ctx context.Context, categoryID uuid.UUID, excludeID uuid.UUID, limit int) ([]Service, error) {
	var rows []Service
	err := r.db.WithContext(ctx).
		Scopes(scope.Active, scope.ExcludeID(excludeID), scope.Limit(limit)).
		Where("category_id = ?", categoryID).
		Order(serviceOrder).
		Find(&rows).Error
	return rows, err
}
