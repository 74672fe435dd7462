package testimonial

import (
	"context"
	"strings"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/project"
	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const testimonialOrder = "created_at DESC"

//go:generate mockgen -source=testimonial_repo.go -destination=mock/testimonial_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	List(ctx context.Context, filter ListFilter) ([]Testimonial, int64, error)
	Save(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ProjectExists(ctx context.Context, id uuid.UUID) (bool, error)
	ServiceExists(ctx context.Context, id uuid.UUID) (bool, error)
	ListFeatured(ctx context.Context, limit int) ([]Testimonial, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	var t Testimonial
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Service").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Testimonial, int64, error) {
	q := r.db.WithContext(ctx).Model(&Testimonial{})
	if filter.Rating > 0 {
		q = q.Where("rating = ?", filter.Rating)
	}
	if filter.IsApproved != nil {
		q = q.Where("is_approved = ?", *filter.IsApproved)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(client_name) LIKE ? OR LOWER(client_company) LIKE ? OR LOWER(content) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Testimonial
	err := q.Preload("Project").
		Preload("Service").
		Order(testimonialOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Testimonial{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) ProjectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&project.Project{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *repository) ServiceExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&catalog.Service{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]Testimonial, error) {
	var rows []Testimonial
	err := r.db.WithContext(ctx).
		Scopes(scope.Approved, scope.Featured, scope.Limit(limit)).
		Preload("Project").
		Preload("Service").
		Order(testimonialOrder).
		Find(&rows).Error
	return rows, err
}
