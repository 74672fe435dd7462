package dashboard

import (
	"context"
	"time"

	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/news"
	"nupo-consult/internal/newsletter"
	"nupo-consult/internal/shared/scope"

	"gorm.io/gorm"
)

type Scope = func(*gorm.DB) *gorm.DB

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	Count(ctx context.Context, model any, scopes ...Scope) (int64, error)
	Breakdown(ctx context.Context, model any, column string) ([]Bucket, error)
	RecentInquiries(ctx context.Context, limit int) ([]inquiry.ContactInquiry, error)
	RecentSubscribers(ctx context.Context, limit int) ([]newsletter.Subscriber, error)
	RecentArticles(ctx context.Context, limit int) ([]news.NewsArticle, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreatedSince keeps rows whose column is at or after t.
func CreatedSince(column string, t time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", t)
	}
}

// Where is a plain equality filter.
func Where(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func (r *repository) Count(ctx context.Context, model any, scopes ...Scope) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Scopes(scopes...).Count(&n).Error
	return n, err
}

func (r *repository) Breakdown(ctx context.Context, model any, column string) ([]Bucket, error) {
	var rows []Bucket
	err := r.db.WithContext(ctx).
		Model(model).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Order(column).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentInquiries(ctx context.Context, limit int) ([]inquiry.ContactInquiry, error) {
	var rows []inquiry.ContactInquiry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Scopes(scope.Limit(limit)).
		Find(&rows).Error
	return rows, err
}

func (r *repository) RecentSubscribers(ctx context.Context, limit int) ([]newsletter.Subscriber, error) {
	var rows []newsletter.Subscriber
	err := r.db.WithContext(ctx).
		Scopes(scope.Active, scope.Limit(limit)).
		Order("subscribed_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) RecentArticles(ctx context.Context, limit int) ([]news.NewsArticle, error) {
	var rows []news.NewsArticle
	err := r.db.WithContext(ctx).
		Preload("Author").
		Scopes(scope.Published, scope.Limit(limit)).
		Order("published_date DESC").
		Find(&rows).Error
	return rows, err
}
