package news_test

import (
	"context"
	"testing"
	"time"

	"nupo-consult/internal/news"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/counter"
	"nupo-consult/internal/shared/dberr"
	"nupo-consult/internal/shared/testdb"
	"nupo-consult/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func day(d int) *time.Time {
	t := time.Date(2025, 1, d, 9, 0, 0, 0, time.UTC)
	return &t
}

func seedArticles(t *testing.T) (*gorm.DB, news.Repository, []*news.NewsArticle) {
	t.Helper()
	db := testdb.New(t, &user.User{}, &news.NewsArticle{})
	repo := news.NewRepository(db)
	ctx := context.Background()

	author := &user.User{Name: "Editor", Email: "editor@nupoconsult.rw", Password: "x", Role: "editor", IsActive: true}
	require.NoError(t, db.Create(author).Error)

	articles := []*news.NewsArticle{
		{Title: "Award", Slug: "award", ArticleType: news.TypeAward, AuthorID: &author.ID, Excerpt: "e", Content: "c", IsPublished: true, IsFeatured: true, PublishedDate: day(3)},
		{Title: "Bridge opened", Slug: "bridge-opened", ArticleType: news.TypeProject, Excerpt: "e", Content: "c", IsPublished: true, PublishedDate: day(5)},
		{Title: "Road works", Slug: "road-works", ArticleType: news.TypeProject, Excerpt: "e", Content: "c", IsPublished: true, PublishedDate: day(1)},
		{Title: "Draft", Slug: "draft", ArticleType: news.TypeProject, Excerpt: "e", Content: "c"},
	}
	for _, a := range articles {
		require.NoError(t, repo.Create(ctx, a))
	}
	return db, repo, articles
}

func TestRepository_ListPublished(t *testing.T) {
	_, repo, _ := seedArticles(t)
	ctx := context.Background()

	rows, total, err := repo.ListPublished(ctx, "", 1, 6)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "bridge-opened", rows[0].Slug)
	assert.Equal(t, "award", rows[1].Slug)
	if assert.NotNil(t, rows[1].Author) {
		assert.Equal(t, "Editor", rows[1].Author.Name)
	}

	projects, total, err := repo.ListPublished(ctx, "project", 1, 6)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, projects, 2)

	unknown, total, err := repo.ListPublished(ctx, "gossip", 1, 6)
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, unknown)

	_, err = repo.FindPublishedBySlug(ctx, "draft")
	assert.True(t, dberr.IsNotFound(err))
}

func TestRepository_ListRelated(t *testing.T) {
	_, repo, articles := seedArticles(t)

	rows, err := repo.ListRelated(context.Background(), news.TypeProject, articles[1].ID, 3)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "road-works", rows[0].Slug)
	}
}

func TestViewCounter_IncrementsByOne(t *testing.T) {
	db, repo, articles := seedArticles(t)
	ctx := context.Background()
	counters := counter.NewRepository(db)

	for want := int64(1); want <= 3; want++ {
		got, err := counters.Increment(ctx, counter.NewsViews, articles[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	a, err := repo.FindByID(ctx, articles[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), a.ViewsCount)
}

func TestBulkPublish_KeepsExistingDate(t *testing.T) {
	db, repo, articles := seedArticles(t)
	ctx := context.Background()
	svc := news.NewService(db, repo, counter.NewRepository(db), nil, zap.NewNop())

	res, err := svc.BulkAction(ctx, "publish", "", bulk.Request{IDs: []string{
		articles[2].ID.String(),
		articles[3].ID.String(),
	}})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), res.Affected)

	kept, err := repo.FindByID(ctx, articles[2].ID)
	assert.NoError(t, err)
	assert.True(t, kept.PublishedDate.Equal(*day(1)))

	stamped, err := repo.FindByID(ctx, articles[3].ID)
	assert.NoError(t, err)
	assert.True(t, stamped.IsPublished)
	if assert.NotNil(t, stamped.PublishedDate) {
		assert.WithinDuration(t, time.Now(), *stamped.PublishedDate, time.Minute)
	}
}
