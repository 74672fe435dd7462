package inquiry

import (
	"context"
	"strings"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	inquiryOrder = "created_at DESC"
	servicesJoin = "contact_inquiry_services"
)

//go:generate mockgen -source=inquiry_repo.go -destination=mock/inquiry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, i *ContactInquiry) error
	FindServices(ctx context.Context, ids []uuid.UUID) ([]catalog.Service, error)
	LinkServices(ctx context.Context, i *ContactInquiry, services []catalog.Service) error
	CountServices(ctx context.Context, id uuid.UUID) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*ContactInquiry, error)
	List(ctx context.Context, filter ListFilter) ([]ContactInquiry, int64, error)
	Save(ctx context.Context, i *ContactInquiry) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
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

func (r *repository) Create(ctx context.Context, i *ContactInquiry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(i).Error
}

func (r *repository) FindServices(ctx context.Context, ids []uuid.UUID) ([]catalog.Service, error) {
	var rows []catalog.Service
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

// LinkServices appends join rows only; the services themselves are never
// written.
func (r *repository) LinkServices(ctx context.Context, i *ContactInquiry, services []catalog.Service) error {
	if len(services) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(i).
		Omit("ServicesInterested.*").
		Association("ServicesInterested").
		Append(services)
}

func (r *repository) CountServices(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table(servicesJoin).
		Where("contact_inquiry_id = ?", id).
		Count(&n).Error
	return n, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ContactInquiry, error) {
	var i ContactInquiry
	err := r.db.WithContext(ctx).
		Preload("ServicesInterested").
		Preload("RespondedBy").
		First(&i, "id = ?", id).Error
	return &i, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]ContactInquiry, int64, error) {
	q := r.db.WithContext(ctx).Model(&ContactInquiry{})
	if filter.InquiryType != "" {
		q = q.Where("inquiry_type = ?", filter.InquiryType)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.IsResponded != nil {
		q = q.Where("is_responded = ?", *filter.IsResponded)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(company) LIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ContactInquiry
	err := q.Preload("ServicesInterested").
		Order(inquiryOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, i *ContactInquiry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(i).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	i := &ContactInquiry{ID: id}
	if err := r.db.WithContext(ctx).Model(i).Association("ServicesInterested").Clear(); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Delete(&ContactInquiry{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
