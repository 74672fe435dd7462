package partner

import (
	"context"
	"strings"

	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const partnerOrder = "sort_order ASC, name ASC"

//go:generate mockgen -source=partner_repo.go -destination=mock/partner_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Partner) error
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	List(ctx context.Context, filter ListFilter) ([]Partner, int64, error)
	Save(ctx context.Context, p *Partner) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListActive(ctx context.Context, limit int) ([]Partner, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	var p Partner
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Partner, int64, error) {
	q := r.db.WithContext(ctx).Model(&Partner{})
	if filter.PartnerType != "" {
		q = q.Where("partner_type = ?", filter.PartnerType)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Partner
	err := q.Order(partnerOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Partner{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ListActive returns every active partner when limit is zero.
func (r *repository) ListActive(ctx context.Context, limit int) ([]Partner, error) {
	var rows []Partner
	err := r.db.WithContext(ctx).
		Scopes(scope.Active, scope.Limit(limit)).
		Order(partnerOrder).
		Find(&rows).Error
	return rows, err
}
