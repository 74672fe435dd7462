package team

import (
	"context"
	"strings"

	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const memberOrder = "sort_order ASC, name ASC"

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, member *TeamMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)
	List(ctx context.Context, filter ListFilter) ([]TeamMember, int64, error)
	Save(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListActive(ctx context.Context, limit int) ([]TeamMember, error)
	ListFeatured(ctx context.Context, limit int) ([]TeamMember, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*TeamMember, error) {
	var m TeamMember
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]TeamMember, int64, error) {
	q := r.db.WithContext(ctx).Model(&TeamMember{})
	if filter.PositionType != "" {
		q = q.Where("position_type = ?", filter.PositionType)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(position) LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []TeamMember
	err := q.Order(memberOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, m *TeamMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&TeamMember{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) ListActive(ctx context.Context, limit int) ([]TeamMember, error) {
	var rows []TeamMember
	err := r.db.WithContext(ctx).
		Scopes(scope.Active, scope.Limit(limit)).
		Order(memberOrder).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]TeamMember, error) {
	var rows []TeamMember
	err := r.db.WithContext(ctx).
		Scopes(scope.Active, scope.Featured, scope.Limit(limit)).
		Order(memberOrder).
		Find(&rows).Error
	return rows, err
}
