package catalog_test

import (
	"context"
	"testing"

	"nupo-consult/internal/catalog"
	catalogerrors "nupo-consult/internal/catalog/errors"
	"nupo-consult/internal/shared/dberr"
	"nupo-consult/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	repo       catalog.Repository
	structural *catalog.ServiceCategory
	building   *catalog.Service
	bridge     *catalog.Service
	retired    *catalog.Service
}

func seed(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t, &catalog.ServiceCategory{}, &catalog.Service{})
	repo := catalog.NewRepository(db)
	ctx := context.Background()

	structural := &catalog.ServiceCategory{Name: "Structural Engineering", Slug: "structural-engineering", IsActive: true}
	require.NoError(t, repo.CreateCategory(ctx, structural))

	building := &catalog.Service{
		CategoryID:       &structural.ID,
		Title:            "Building Design",
		Slug:             "building-design",
		ShortDescription: "Residential and commercial structures",
		FullDescription:  "Full structural design.",
		Features:         []string{"Load analysis", "Seismic review"},
		IsActive:         true,
		IsFeatured:       true,
		SortOrder:        1,
	}
	bridge := &catalog.Service{
		CategoryID:       &structural.ID,
		Title:            "Bridge Analysis",
		Slug:             "bridge-analysis",
		ShortDescription: "Span and deck checks",
		FullDescription:  "Bridges.",
		IsActive:         true,
		SortOrder:        2,
	}
	retired := &catalog.Service{
		Title:            "Drafting",
		Slug:             "drafting",
		ShortDescription: "Legacy drafting",
		FullDescription:  "No longer offered.",
	}
	for _, s := range []*catalog.Service{building, bridge, retired} {
		require.NoError(t, repo.CreateService(ctx, s))
	}

	return &fixture{db: db, repo: repo, structural: structural, building: building, bridge: bridge, retired: retired}
}

func slugs(rows []catalog.Service) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Slug
	}
	return out
}

func TestRepository_ListActive(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	t.Run("only active services, ordered", func(t *testing.T) {
		rows, err := f.repo.ListActive(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, []string{"building-design", "bridge-analysis"}, slugs(rows))
		assert.Equal(t, []string{"Load analysis", "Seismic review"}, []string(rows[0].Features))
		assert.Equal(t, "Structural Engineering", rows[0].Category.Name)
	})

	t.Run("search matches title ignoring case", func(t *testing.T) {
		rows, err := f.repo.ListActive(ctx, "BRIDGE")
		assert.NoError(t, err)
		assert.Equal(t, []string{"bridge-analysis"}, slugs(rows))
	})

	t.Run("search matches short description", func(t *testing.T) {
		rows, err := f.repo.ListActive(ctx, "commercial")
		assert.NoError(t, err)
		assert.Equal(t, []string{"building-design"}, slugs(rows))
	})

	t.Run("search matches category name", func(t *testing.T) {
		rows, err := f.repo.ListActive(ctx, "structural")
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("inactive services never match", func(t *testing.T) {
		rows, err := f.repo.ListActive(ctx, "drafting")
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestRepository_FindActiveBySlug(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	got, err := f.repo.FindActiveBySlug(ctx, "bridge-analysis")
	assert.NoError(t, err)
	assert.Equal(t, f.bridge.ID, got.ID)

	_, err = f.repo.FindActiveBySlug(ctx, "drafting")
	assert.True(t, dberr.IsNotFound(err))
}

func TestRepository_ListRelated(t *testing.T) {
	f := seed(t)

	rows, err := f.repo.ListRelated(context.Background(), f.structural.ID, f.building.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, []string{"bridge-analysis"}, slugs(rows))
}

func TestRepository_Categories(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	active, err := f.repo.ListActiveCategories(ctx)
	assert.NoError(t, err)
	if assert.Len(t, active, 1) {
		assert.Equal(t, int64(2), active[0].ServiceCount)
	}

	rows, total, err := f.repo.ListCategories(ctx, catalog.CategoryFilter{Page: 1, PageSize: 20})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, rows, 1)

	err = f.repo.CreateCategory(ctx, &catalog.ServiceCategory{Name: "Dup", Slug: "structural-engineering"})
	assert.True(t, dberr.IsUniqueViolation(err))

	assert.NoError(t, f.repo.DetachCategory(ctx, f.structural.ID))
	n, err := f.repo.DeleteCategory(ctx, f.structural.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.repo.FindServiceByID(ctx, f.building.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.Category)
}

func TestRepository_ListServicesFilters(t *testing.T) {
	f := seed(t)
	featured := true

	rows, total, err := f.repo.ListServices(context.Background(), catalog.ServiceFilter{
		IsFeatured: &featured,
		Page:       1,
		PageSize:   20,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"building-design"}, slugs(rows))
}

func TestCatalog_CreatedInactiveStaysOffPublicPages(t *testing.T) {
	db := testdb.New(t, &catalog.ServiceCategory{}, &catalog.Service{})
	svc := catalog.NewCatalog(db, catalog.NewRepository(db), nil, zap.NewNop())
	ctx := context.Background()
	off := false

	live, err := svc.CreateCategory(ctx, catalog.CategoryRequest{Name: "Geotechnical"})
	require.NoError(t, err)
	hiddenCat, err := svc.CreateCategory(ctx, catalog.CategoryRequest{Name: "Surveying", IsActive: &off})
	require.NoError(t, err)
	assert.False(t, hiddenCat.IsActive)

	_, err = svc.CreateService(ctx, catalog.ServiceRequest{
		CategoryID:       &live.ID,
		Title:            "Soil Testing",
		ShortDescription: "s",
		FullDescription:  "f",
	})
	require.NoError(t, err)
	hidden, err := svc.CreateService(ctx, catalog.ServiceRequest{
		CategoryID:       &live.ID,
		Title:            "Pile Design",
		ShortDescription: "s",
		FullDescription:  "f",
		IsFeatured:       true,
		IsActive:         &off,
	})
	require.NoError(t, err)
	assert.False(t, hidden.IsActive)

	stored, err := svc.GetService(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	listing, err := svc.Listing(ctx, "")
	require.NoError(t, err)
	if assert.Len(t, listing.Services, 1) {
		assert.Equal(t, "soil-testing", listing.Services[0].Slug)
	}
	if assert.Len(t, listing.Categories, 1) {
		assert.Equal(t, "geotechnical", listing.Categories[0].Slug)
		assert.Equal(t, int64(1), listing.Categories[0].ServiceCount)
	}

	featured, err := svc.Featured(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, featured)

	_, err = svc.DetailBySlug(ctx, "pile-design")
	assert.ErrorIs(t, err, catalogerrors.ErrServiceNotFound)
}
