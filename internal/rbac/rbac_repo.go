package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	CreateRolePermissions(ctx context.Context, perms []RolePermission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).
		Order("role ASC, resource ASC, action ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) CreateRolePermissions(ctx context.Context, perms []RolePermission) error {
	if len(perms) == 0 {
		return nil
	}
	for i := range perms {
		if perms[i].ID == uuid.Nil {
			perms[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).Create(&perms).Error
}
