package project_test

import (
	"context"
	"testing"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/project"
	projecterrors "nupo-consult/internal/project/errors"
	"nupo-consult/internal/shared/dberr"
	"nupo-consult/internal/shared/testdb"
	"nupo-consult/internal/team"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type projectFixture struct {
	db       *gorm.DB
	repo     project.Repository
	service  project.Service
	services []*catalog.Service
	member   *team.TeamMember
}

func setupProjects(t *testing.T) *projectFixture {
	t.Helper()
	db := testdb.New(t, &catalog.ServiceCategory{}, &catalog.Service{}, &team.TeamMember{}, &project.Project{})
	repo := project.NewRepository(db)

	services := []*catalog.Service{
		{Title: "Design", Slug: "design", ShortDescription: "s", FullDescription: "f", IsActive: true},
		{Title: "Supervision", Slug: "supervision", ShortDescription: "s", FullDescription: "f", IsActive: true},
	}
	for _, s := range services {
		require.NoError(t, db.Create(s).Error)
	}
	member := &team.TeamMember{Name: "Jean", Slug: "jean", Position: "CEO", PositionType: team.PositionCEO, Bio: "b", IsActive: true}
	require.NoError(t, db.Create(member).Error)

	return &projectFixture{
		db:       db,
		repo:     repo,
		service:  project.NewService(db, repo, nil, zap.NewNop()),
		services: services,
		member:   member,
	}
}

func baseRequest(name string) project.ProjectRequest {
	return project.ProjectRequest{
		Name:        name,
		Client:      "City of Kigali",
		ProjectType: "infrastructure",
		Status:      "completed",
		Description: "d",
		Location:    "Kigali",
	}
}

func countLinks(t *testing.T, db *gorm.DB, table string, projectID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where("project_id = ?", projectID).Count(&n).Error)
	return n
}

func TestService_CreateLinksRelations(t *testing.T) {
	f := setupProjects(t)
	ctx := context.Background()

	budget := decimal.RequireFromString("1500000.50")
	req := baseRequest("Nyabugogo Bridge")
	req.Budget = &budget
	req.StartDate = "2023-01-10"
	req.EndDate = "2024-02-01"
	req.GalleryImages = []string{"a.jpg", "b.jpg"}
	req.ServiceIDs = []string{f.services[0].ID.String(), f.services[1].ID.String(), f.services[0].ID.String()}
	req.TeamMemberIDs = []string{f.member.ID.String()}

	res, err := f.service.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "nyabugogo-bridge", res.Slug)
	assert.Len(t, res.ServicesProvided, 2)

	assert.Equal(t, int64(2), countLinks(t, f.db, "project_services", res.ID))
	assert.Equal(t, int64(1), countLinks(t, f.db, "project_team_members", res.ID))

	got, err := f.repo.FindPublicBySlug(ctx, "nyabugogo-bridge")
	require.NoError(t, err)
	assert.True(t, got.Budget.Equal(budget))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(got.GalleryImages))
	assert.Len(t, got.TeamMembers, 1)
}

func TestService_CreateUnknownServiceRollsBack(t *testing.T) {
	f := setupProjects(t)
	ctx := context.Background()

	req := baseRequest("Ghost Project")
	req.ServiceIDs = []string{uuid.NewString()}

	_, err := f.service.Create(ctx, req)
	assert.ErrorIs(t, err, projecterrors.ErrUnknownServices)

	var n int64
	require.NoError(t, f.db.Model(&project.Project{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRepository_NonPublicHidden(t *testing.T) {
	f := setupProjects(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, baseRequest("Public Road"))
	require.NoError(t, err)

	private := baseRequest("Private Villa")
	private.ProjectType = "residential"
	hidden := false
	private.IsPublic = &hidden
	_, err = f.service.Create(ctx, private)
	require.NoError(t, err)

	rows, total, err := f.repo.ListPublic(ctx, "", "", 1, 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "public-road", rows[0].Slug)

	_, err = f.repo.FindPublicBySlug(ctx, "private-villa")
	assert.True(t, dberr.IsNotFound(err))

	rows, total, err = f.repo.ListPublic(ctx, "spaceport", "", 1, 9)
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
}

func TestService_CreatedPrivateProjectOffPublicPages(t *testing.T) {
	f := setupProjects(t)
	ctx := context.Background()
	hidden := false

	_, err := f.service.Create(ctx, baseRequest("Kimironko Market"))
	require.NoError(t, err)

	private := baseRequest("Client Residence")
	private.IsFeatured = true
	private.IsPublic = &hidden
	res, err := f.service.Create(ctx, private)
	require.NoError(t, err)
	assert.False(t, res.IsPublic)

	listing, err := f.service.Listing(ctx, "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), listing.Meta.Total)
	if assert.Len(t, listing.Projects, 1) {
		assert.Equal(t, "kimironko-market", listing.Projects[0].Slug)
	}

	featured, err := f.service.Featured(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, featured)

	_, err = f.service.DetailBySlug(ctx, "client-residence")
	assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
}

func TestService_DeleteClearsLinks(t *testing.T) {
	f := setupProjects(t)
	ctx := context.Background()

	req := baseRequest("Short Lived")
	req.ServiceIDs = []string{f.services[0].ID.String()}
	res, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, res.ID))
	assert.Zero(t, countLinks(t, f.db, "project_services", res.ID))
	assert.ErrorIs(t, f.service.Delete(ctx, res.ID), projecterrors.ErrProjectNotFound)
}
