package scope_test

import (
	"math"
	"testing"

	"nupo-consult/internal/shared/scope"
	"nupo-consult/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageRow struct {
	ID       uint `gorm:"primaryKey"`
	IsActive bool
}

func TestPaginate(t *testing.T) {
	db := testdb.New(t, &pageRow{})
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&pageRow{IsActive: i%2 == 0}).Error)
	}

	var page []pageRow
	require.NoError(t, db.Scopes(scope.Paginate(2, 2)).Order("id").Find(&page).Error)
	if assert.Len(t, page, 2) {
		assert.Equal(t, uint(3), page[0].ID)
	}

	page = nil
	require.NoError(t, db.Scopes(scope.Paginate(0, 2)).Order("id").Find(&page).Error)
	if assert.Len(t, page, 2) {
		assert.Equal(t, uint(1), page[0].ID)
	}

	page = nil
	require.NoError(t, db.Scopes(scope.Active, scope.Paginate(math.MaxInt, 20)).Find(&page).Error)
	assert.Empty(t, page)

	var n int64
	require.NoError(t, db.Model(&pageRow{}).Scopes(scope.Active).Count(&n).Error)
	assert.Equal(t, int64(3), n)
}
