package project_test

import (
	"context"
	"testing"

	"nupo-consult/internal/project"
	projecterrors "nupo-consult/internal/project/errors"
	projectMock "nupo-consult/internal/project/mock"
	"nupo-consult/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestService_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	svc := project.NewService(db, projectMock.NewMockRepository(ctrl), nil, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*project.ProjectRequest)
		want   error
	}{
		{"type", func(r *project.ProjectRequest) { r.ProjectType = "spaceport" }, projecterrors.ErrInvalidProjectType},
		{"status", func(r *project.ProjectRequest) { r.Status = "abandoned" }, projecterrors.ErrInvalidStatus},
		{"date format", func(r *project.ProjectRequest) { r.StartDate = "01/02/2023" }, projecterrors.ErrInvalidDate},
		{"date range", func(r *project.ProjectRequest) { r.StartDate, r.EndDate = "2024-01-01", "2023-01-01" }, projecterrors.ErrInvalidDateRange},
		{"budget", func(r *project.ProjectRequest) { b := decimal.NewFromInt(-1); r.Budget = &b }, projecterrors.ErrInvalidBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest("Validated")
			tc.mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_DetailBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	repo := projectMock.NewMockRepository(ctrl)
	svc := project.NewService(db, repo, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("related of the same type", func(t *testing.T) {
		p := &project.Project{ID: uuid.New(), Slug: "bridge", ProjectType: project.TypeInfrastructure}
		repo.EXPECT().FindPublicBySlug(ctx, "bridge").Return(p, nil)
		repo.EXPECT().ListRelated(ctx, project.TypeInfrastructure, p.ID, 3).
			Return([]project.Project{{ID: uuid.New(), Slug: "road"}}, nil)

		res, err := svc.DetailBySlug(ctx, "bridge")
		assert.NoError(t, err)
		assert.Equal(t, "bridge", res.Project.Slug)
		assert.Len(t, res.Related, 1)
	})

	t.Run("private is not found", func(t *testing.T) {
		repo.EXPECT().FindPublicBySlug(ctx, "villa").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.DetailBySlug(ctx, "villa")
		assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
	})
}

func TestService_ListingClampsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	repo := projectMock.NewMockRepository(ctrl)
	svc := project.NewService(db, repo, nil, zap.NewNop())

	repo.EXPECT().ListPublic(gomock.Any(), "commercial", "", 1, project.ListingPageSize).
		Return(nil, int64(10), nil)

	res, err := svc.Listing(context.Background(), "commercial", "", -4)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Meta.TotalPages)
	assert.Empty(t, res.Projects)
}
