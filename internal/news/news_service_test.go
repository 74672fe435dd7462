package news_test

import (
	"context"
	"errors"
	"testing"

	"nupo-consult/internal/news"
	newserrors "nupo-consult/internal/news/errors"
	newsMock "nupo-consult/internal/news/mock"
	"nupo-consult/internal/shared/counter"
	counterMock "nupo-consult/internal/shared/counter/mock"
	"nupo-consult/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type newsDeps struct {
	service  news.Service
	repo     *newsMock.MockRepository
	counters *counterMock.MockRepository
}

func setupNewsService(t *testing.T) *newsDeps {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	repo := newsMock.NewMockRepository(ctrl)
	counters := counterMock.NewMockRepository(ctrl)
	return &newsDeps{
		service:  news.NewService(db, repo, counters, nil, zap.NewNop()),
		repo:     repo,
		counters: counters,
	}
}

func TestService_DetailBySlug(t *testing.T) {
	ctx := context.Background()
	article := func() *news.NewsArticle {
		return &news.NewsArticle{ID: uuid.New(), Slug: "bridge-opened", ArticleType: news.TypeProject, IsPublished: true, ViewsCount: 7}
	}

	t.Run("returns the incremented count", func(t *testing.T) {
		deps := setupNewsService(t)
		a := article()
		deps.repo.EXPECT().FindPublishedBySlug(ctx, "bridge-opened").Return(a, nil)
		deps.counters.EXPECT().Increment(ctx, counter.NewsViews, a.ID).Return(int64(8), nil)
		deps.repo.EXPECT().ListRelated(ctx, news.TypeProject, a.ID, 3).Return(nil, nil)

		res, err := deps.service.DetailBySlug(ctx, "bridge-opened")

		assert.NoError(t, err)
		assert.Equal(t, int64(8), res.Article.ViewsCount)
		assert.Empty(t, res.Related)
	})

	t.Run("increment failure is not fatal", func(t *testing.T) {
		deps := setupNewsService(t)
		a := article()
		deps.repo.EXPECT().FindPublishedBySlug(ctx, "bridge-opened").Return(a, nil)
		deps.counters.EXPECT().Increment(ctx, counter.NewsViews, a.ID).Return(int64(0), errors.New("db down"))
		deps.repo.EXPECT().ListRelated(ctx, news.TypeProject, a.ID, 3).Return(nil, nil)

		res, err := deps.service.DetailBySlug(ctx, "bridge-opened")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.Article.ViewsCount)
	})

	t.Run("unpublished is not found and not counted", func(t *testing.T) {
		deps := setupNewsService(t)
		deps.repo.EXPECT().FindPublishedBySlug(ctx, "draft").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.DetailBySlug(ctx, "draft")

		assert.ErrorIs(t, err, newserrors.ErrArticleNotFound)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("author defaults to the actor and publishing stamps a date", func(t *testing.T) {
		deps := setupNewsService(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *news.NewsArticle) error {
				assert.Equal(t, actor, *a.AuthorID)
				assert.Equal(t, news.TypeNews, a.ArticleType)
				assert.Equal(t, "nupo-wins-design-award", a.Slug)
				assert.NotNil(t, a.PublishedDate)
				return nil
			})

		_, err := deps.service.Create(ctx, actor.String(), news.ArticleRequest{
			Title:       "NUPO wins design award",
			Excerpt:     "e",
			Content:     "c",
			IsPublished: true,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupNewsService(t)
		_, err := deps.service.Create(ctx, actor.String(), news.ArticleRequest{Title: "x", ArticleType: "gossip"})
		assert.ErrorIs(t, err, newserrors.ErrInvalidArticleType)
	})
}

func TestService_Listing(t *testing.T) {
	ctx := context.Background()
	deps := setupNewsService(t)
	deps.repo.EXPECT().ListPublished(ctx, "award", 1, news.ListingPageSize).
		Return([]news.NewsArticle{{ID: uuid.New()}}, int64(7), nil)
	deps.repo.EXPECT().ListFeatured(ctx, 3).Return(nil, nil)

	res, err := deps.service.Listing(ctx, "award", 0)

	assert.NoError(t, err)
	assert.Len(t, res.Articles, 1)
	assert.Equal(t, 2, res.Meta.TotalPages)
	assert.Equal(t, 1, res.Meta.Page)
}
