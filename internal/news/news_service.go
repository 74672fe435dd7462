package news

import (
	"context"
	"time"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/metrics"
	newserrors "nupo-consult/internal/news/errors"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/counter"
	"nupo-consult/internal/shared/response"
	"nupo-consult/internal/shared/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ListingPageSize = 6
	featuredLimit   = 3
	relatedLimit    = 3
)

var articleActions = bulk.Actions{
	"publish": func(now time.Time, _ string) map[string]any {
		return map[string]any{
			"is_published":   true,
			"published_date": gorm.Expr("COALESCE(published_date, ?)", now),
		}
	},
	"unpublish":       bulk.Set(map[string]any{"is_published": false}),
	"make_featured":   bulk.Set(map[string]any{"is_featured": true}),
	"remove_featured": bulk.Set(map[string]any{"is_featured": false}),
}

//go:generate mockgen -source=news_service.go -destination=mock/news_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ArticleResponse, int64, error)
	GetByID(ctx context.Context, id string) (ArticleResponse, error)
	Create(ctx context.Context, actorID string, req ArticleRequest) (ArticleResponse, error)
	Update(ctx context.Context, id string, req ArticleRequest) (ArticleResponse, error)
	Delete(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)

	Listing(ctx context.Context, articleType string, page int) (Listing, error)
	DetailBySlug(ctx context.Context, slug string) (Detail, error)
	Latest(ctx context.Context, limit int) ([]ArticleResponse, error)
}

type service struct {
	repo     Repository
	counters counter.Repository
	bulk     *bulk.Runner
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counters counter.Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("news.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("news.service")
	}
	return &service{
		repo:     repo,
		counters: counters,
		bulk:     bulk.NewRunner(db, "news", &NewsArticle{}, articleActions, audit, l),
		now:      time.Now,
		logger:   l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, newserrors.ErrInvalidArticleID
	}
	return id, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ArticleResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapArticles(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ArticleResponse, error) {
	aid, err := parseID(id)
	if err != nil {
		return ArticleResponse{}, err
	}
	a, err := s.repo.FindByID(ctx, aid)
	if err != nil {
		return ArticleResponse{}, mapRepositoryError(err)
	}
	return MapArticle(*a), nil
}

// apply copies the request onto a. Publishing without a date stamps now.
func (s *service) apply(req ArticleRequest, a *NewsArticle) error {
	articleType := ArticleType(req.ArticleType)
	if req.ArticleType == "" {
		articleType = TypeNews
	}
	if !articleType.Valid() {
		return newserrors.ErrInvalidArticleType
	}

	if req.AuthorID != nil {
		if *req.AuthorID == "" {
			a.AuthorID = nil
		} else {
			id, err := uuid.Parse(*req.AuthorID)
			if err != nil {
				return newserrors.ErrInvalidAuthorID
			}
			a.AuthorID = &id
		}
		a.Author = nil
	}

	a.Title = req.Title
	if req.Slug != "" || a.Slug == "" {
		a.Slug = slug.Make(req.Slug, req.Title)
	}
	if a.Slug == "" {
		return newserrors.ErrInvalidSlug
	}
	a.ArticleType = articleType
	a.Excerpt = req.Excerpt
	a.Content = req.Content
	a.FeaturedImage = req.FeaturedImage
	a.IconClass = req.IconClass
	a.IsFeatured = req.IsFeatured
	a.IsPublished = req.IsPublished
	if req.PublishedDate != nil {
		d := req.PublishedDate.UTC()
		a.PublishedDate = &d
	}
	if a.IsPublished && a.PublishedDate == nil {
		now := s.now().UTC()
		a.PublishedDate = &now
	}
	a.MetaTitle = req.MetaTitle
	a.MetaDescription = req.MetaDescription
	return nil
}

func (s *service) Create(ctx context.Context, actorID string, req ArticleRequest) (ArticleResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	a := &NewsArticle{}
	if id, err := uuid.Parse(actorID); err == nil {
		a.AuthorID = &id
	}
	if err := s.apply(req, a); err != nil {
		return ArticleResponse{}, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		l.Warn("create news article failed", zap.String("slug", a.Slug), zap.Error(err))
		return ArticleResponse{}, mapRepositoryError(err)
	}

	l.Info("news article created", zap.String("article_id", a.ID.String()), zap.Bool("published", a.IsPublished))
	return MapArticle(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req ArticleRequest) (ArticleResponse, error) {
	aid, err := parseID(id)
	if err != nil {
		return ArticleResponse{}, err
	}
	a, err := s.repo.FindByID(ctx, aid)
	if err != nil {
		return ArticleResponse{}, mapRepositoryError(err)
	}
	if err := s.apply(req, a); err != nil {
		return ArticleResponse{}, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return ArticleResponse{}, mapRepositoryError(err)
	}
	return MapArticle(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	aid, err := parseID(id)
	if err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, aid)
	if err != nil {
		return err
	}
	if n == 0 {
		return newserrors.ErrArticleNotFound
	}
	return nil
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}

func (s *service) Listing(ctx context.Context, articleType string, page int) (Listing, error) {
	if page < 1 {
		page = 1
	}

	rows, total, err := s.repo.ListPublished(ctx, articleType, page, ListingPageSize)
	if err != nil {
		return Listing{}, err
	}
	featured, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return Listing{}, err
	}

	return Listing{
		ArticleType: articleType,
		Articles:    MapArticles(rows),
		Featured:    MapArticles(featured),
		Meta:        response.NewPaginationMeta(total, page, ListingPageSize),
	}, nil
}

// DetailBySlug counts one view per call. A failed increment is logged and
// the stored count is returned.
func (s *service) DetailBySlug(ctx context.Context, slug string) (Detail, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	a, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return Detail{}, mapRepositoryError(err)
	}

	views, err := s.counters.Increment(ctx, counter.NewsViews, a.ID)
	if err != nil {
		l.Warn("increment news views failed", zap.String("article_id", a.ID.String()), zap.Error(err))
	} else {
		a.ViewsCount = views
		metrics.RecordNewsView()
	}

	related, err := s.repo.ListRelated(ctx, a.ArticleType, a.ID, relatedLimit)
	if err != nil {
		return Detail{}, err
	}

	return Detail{Article: MapArticle(*a), Related: MapArticles(related)}, nil
}

func (s *service) Latest(ctx context.Context, limit int) ([]ArticleResponse, error) {
	rows, err := s.repo.ListLatest(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapArticles(rows), nil
}
