package company_test

import (
	"context"
	"testing"

	"nupo-consult/internal/company"
	"nupo-consult/internal/shared/dberr"
	"nupo-consult/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
)

func TestRepository_SingletonBackstop(t *testing.T) {
	db := testdb.New(t, &company.CompanyProfile{}, &company.CompanyStats{})
	repo := company.NewRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.CreateProfile(ctx, &company.CompanyProfile{Name: "NUPO Consult"}))

	err := repo.CreateProfile(ctx, &company.CompanyProfile{Name: "Impostor"})
	assert.True(t, dberr.IsUniqueViolation(err), "second profile must violate the singleton index: %v", err)

	n, err := repo.CountProfiles(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetProfile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "NUPO Consult", got.Name)
	assert.Equal(t, company.SingletonKey, got.SingletonKey)

	assert.NoError(t, repo.CreateStats(ctx, &company.CompanyStats{YearsExperience: 12, SupportHours: 24}))
	err = repo.CreateStats(ctx, &company.CompanyStats{})
	assert.True(t, dberr.IsUniqueViolation(err))
}
