package testimonial_test

import (
	"context"
	"testing"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/project"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/testdb"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.New(t,
		&catalog.ServiceCategory{},
		&catalog.Service{},
		&team.TeamMember{},
		&project.Project{},
		&testimonial.Testimonial{},
	)
}

func TestRepository_RatingCheckConstraint(t *testing.T) {
	db := setupDB(t)
	repo := testimonial.NewRepository(db)

	err := repo.Create(context.Background(), &testimonial.Testimonial{ClientName: "X", Content: "c", Rating: 7})
	assert.Error(t, err)

	err = repo.Create(context.Background(), &testimonial.Testimonial{ClientName: "Y", Content: "c", Rating: 4})
	assert.NoError(t, err)
}

func TestService_FeaturedNeedsApproval(t *testing.T) {
	db := setupDB(t)
	repo := testimonial.NewRepository(db)
	svc := testimonial.NewService(db, repo, nil, zap.NewNop())
	ctx := context.Background()

	svcRow := &catalog.Service{Title: "Design", Slug: "design", ShortDescription: "s", FullDescription: "f", IsActive: true}
	require.NoError(t, db.Create(svcRow).Error)
	sid := svcRow.ID.String()

	approved, err := svc.Create(ctx, testimonial.TestimonialRequest{
		ClientName: "Diane", Content: "Great work", Rating: 5, ServiceID: &sid, IsFeatured: true, IsApproved: true,
	})
	require.NoError(t, err)
	pending, err := svc.Create(ctx, testimonial.TestimonialRequest{
		ClientName: "Paul", Content: "Good", Rating: 4, IsFeatured: true,
	})
	require.NoError(t, err)

	featured, err := svc.Featured(ctx, 3)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, approved.ID, featured[0].ID)
	require.NotNil(t, featured[0].Service)
	assert.Equal(t, "Design", featured[0].Service.Name)

	res, err := svc.BulkAction(ctx, "approve", "", bulk.Request{IDs: []string{pending.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)

	featured, err = svc.Featured(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, featured, 2)
}
