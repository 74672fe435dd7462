package partner_test

import (
	"context"
	"testing"
	"time"

	"nupo-consult/internal/partner"
	"nupo-consult/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepository_ListActive(t *testing.T) {
	db := testdb.New(t, &partner.Partner{})
	repo := partner.NewRepository(db)
	ctx := context.Background()

	since := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	rtda := &partner.Partner{Name: "RTDA", Slug: "rtda", PartnerType: partner.TypeGovernment, IsActive: true, PartnershipStartDate: &since}
	ur := &partner.Partner{Name: "University of Rwanda", Slug: "university-of-rwanda", PartnerType: partner.TypeAcademic, IsActive: true}
	old := &partner.Partner{Name: "Old Supplier", Slug: "old-supplier", PartnerType: partner.TypeSupplier}
	for _, p := range []*partner.Partner{rtda, ur, old} {
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.ListActive(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "RTDA", all[0].Name)
	if assert.NotNil(t, all[0].PartnershipStartDate) {
		assert.Equal(t, "2019-03-01", all[0].PartnershipStartDate.Format("2006-01-02"))
	}

	capped, err := repo.ListActive(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, capped, 1)

	rows, total, err := repo.List(ctx, partner.ListFilter{PartnerType: "academic", Page: 1, PageSize: 20})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "university-of-rwanda", rows[0].Slug)
}

func TestService_CreatedInactivePartnerHidden(t *testing.T) {
	db := testdb.New(t, &partner.Partner{})
	svc := partner.NewService(db, partner.NewRepository(db), nil, zap.NewNop())
	ctx := context.Background()
	off := false

	_, err := svc.Create(ctx, partner.PartnerRequest{Name: "REG", PartnerType: "government"})
	require.NoError(t, err)
	gone, err := svc.Create(ctx, partner.PartnerRequest{Name: "Lapsed Supplier", PartnerType: "supplier", IsActive: &off})
	require.NoError(t, err)
	assert.False(t, gone.IsActive)

	active, err := svc.Active(ctx, 0)
	require.NoError(t, err)
	if assert.Len(t, active, 1) {
		assert.Equal(t, "REG", active[0].Name)
	}
}
