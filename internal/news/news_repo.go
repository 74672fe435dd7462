package news

import (
	"context"
	"strings"

	"nupo-consult/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const publishedOrder = "published_date DESC, created_at DESC"

//go:generate mockgen -source=news_repo.go -destination=mock/news_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *NewsArticle) error
	FindByID(ctx context.Context, id uuid.UUID) (*NewsArticle, error)
	List(ctx context.Context, filter ListFilter) ([]NewsArticle, int64, error)
	Save(ctx context.Context, a *NewsArticle) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	ListPublished(ctx context.Context, articleType string, page int, pageSize int) ([]NewsArticle, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]NewsArticle, error)
	ListLatest(ctx context.Context, limit int) ([]NewsArticle, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*NewsArticle, error)
	ListRelated(ctx context.Context, articleType ArticleType, excludeID uuid.UUID, limit int) ([]NewsArticle, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *NewsArticle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*NewsArticle, error) {
	var a NewsArticle
	err := r.db.WithContext(ctx).Preload("Author").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]NewsArticle, int64, error) {
	q := r.db.WithContext(ctx).Model(&NewsArticle{})
	if filter.ArticleType != "" {
		q = q.Where("article_type = ?", filter.ArticleType)
	}
	if filter.IsPublished != nil {
		q = q.Where("is_published = ?", *filter.IsPublished)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []NewsArticle
	err := q.Preload("Author").
		Order("created_at DESC").
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, a *NewsArticle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, "views_count").Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&NewsArticle{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) ListPublished(ctx context.Context, articleType string, page int, pageSize int) ([]NewsArticle, int64, error) {
	q := r.db.WithContext(ctx).Model(&NewsArticle{}).Scopes(scope.Published)
	if articleType != "" {
		q = q.Where("article_type = ?", articleType)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []NewsArticle
	err := q.Preload("Author").
		Order(publishedOrder).
		Scopes(scope.Paginate(page, pageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]NewsArticle, error) {
	var rows []NewsArticle
	err := r.db.WithContext(ctx).
		Scopes(scope.Published, scope.Featured, scope.Limit(limit)).
		Preload("Author").
		Order(publishedOrder).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListLatest(ctx context.Context, limit int) ([]NewsArticle, error) {
	var rows []NewsArticle
	err := r.db.WithContext(ctx).
		Scopes(scope.Published, scope.Limit(limit)).
		Preload("Author").
		Order(publishedOrder).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPublishedBySlug(ctx context.Context, slug string) (*NewsArticle, error) {
	var a NewsArticle
	err := r.db.WithContext(ctx).
		Scopes(scope.Published).
		Preload("Author").
		Where("slug = ?", slug).
		First(&a).Error
	return &a, err
}

func (r *repository) ListRelated(ctx context.Context, articleType ArticleType, excludeID uuid.UUID, limit int) ([]NewsArticle, error) {
	var rows []NewsArticle
	err := r.db.WithContext(ctx).
		Scopes(scope.Published, scope.ExcludeID(excludeID), scope.Limit(limit)).
		Where("article_type = ?", articleType).
		Order(publishedOrder).
		Find(&rows).Error
	return rows, err
}
