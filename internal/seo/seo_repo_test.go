package seo_test

import (
	"context"
	"testing"

	"nupo-consult/internal/seo"
	"nupo-consult/internal/shared/dberr"
	"nupo-consult/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_PageNameUnique(t *testing.T) {
	db := testdb.New(t, &seo.Settings{})
	repo := seo.NewRepository(db)
	ctx := context.Background()

	first := &seo.Settings{PageName: seo.PageHome}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, seo.DefaultRobotsMeta, first.RobotsMeta)

	err := repo.Create(ctx, &seo.Settings{PageName: seo.PageHome})
	assert.True(t, dberr.IsUniqueViolation(err))

	got, err := repo.FindByPage(ctx, seo.PageHome)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}
