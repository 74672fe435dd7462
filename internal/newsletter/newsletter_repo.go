package newsletter

import (
	"context"
	"strings"

	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=newsletter_repo.go -destination=mock/newsletter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindByEmail(ctx context.Context, email string) (*Subscriber, error)
	Create(ctx context.Context, s *Subscriber) error
	Reactivate(ctx context.Context, id uuid.UUID, name string) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*Subscriber, error)
	List(ctx context.Context, filter ListFilter) ([]Subscriber, int64, error)
	Save(ctx context.Context, s *Subscriber) error
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

func (r *repository) FindByEmail(ctx context.Context, email string) (*Subscriber, error) {
	var s Subscriber
	err := r.db.WithContext(ctx).First(&s, "email = ?", email).Error
	return &s, err
}

func (r *repository) Create(ctx context.Context, s *Subscriber) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Reactivate only flips inactive rows, so two concurrent reactivations
// affect one row between them.
func (r *repository) Reactivate(ctx context.Context, id uuid.UUID, name string) (int64, error) {
	values := map[string]any{
		"is_active":         true,
		"unsubscribed_date": nil,
	}
	if name != "" {
		values["name"] = name
	}
	res := r.db.WithContext(ctx).
		Model(&Subscriber{}).
		Where("id = ? AND is_active = ?", id, false).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Subscriber, error) {
	var s Subscriber
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Subscriber, int64, error) {
	q := r.db.WithContext(ctx).Model(&Subscriber{})
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Subscriber
	err := q.Order("subscribed_date DESC").
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, s *Subscriber) error {
	return r.db.WithContext(ctx).Save(s).Error
}
