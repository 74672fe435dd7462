package rbac

import (
	"context"
	"testing"

	"nupo-consult/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
)

func TestRepository_RoundTrip(t *testing.T) {
	db := testdb.New(t, &RolePermission{})
	repo := NewRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.CreateRolePermissions(ctx, DefaultPermissions()))

	perms, err := repo.ListRolePermissions(ctx)
	assert.NoError(t, err)
	assert.Len(t, perms, len(DefaultPermissions()))
	assert.Equal(t, RoleAdmin, perms[0].Role)

	err = repo.CreateRolePermissions(ctx, []RolePermission{{Role: RoleAdmin, Resource: "*", Action: "*"}})
	assert.Error(t, err, "duplicate policy line must hit the unique index")
}
