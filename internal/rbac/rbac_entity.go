package rbac

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

// RolePermission is one casbin "p" line: role may perform action on
// resource.
type RolePermission struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Role      string    `gorm:"column:role;type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	Resource  string    `gorm:"column:resource;type:varchar(100);not null;uniqueIndex:uq_role_permission"`
	Action    string    `gorm:"column:action;type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

var contentResources = []string{
	"service", "service_category", "team", "partner", "news",
	"project", "testimonial", "seo", "company",
}

// DefaultPermissions is the matrix used while role_permissions is empty.
func DefaultPermissions() []RolePermission {
	perms := []RolePermission{
		{Role: RoleAdmin, Resource: "*", Action: "*"},
		{Role: RoleViewer, Resource: "dashboard", Action: "read"},
		{Role: RoleStaff, Resource: "inquiry", Action: "*"},
		{Role: RoleStaff, Resource: "newsletter", Action: "*"},
	}
	for _, res := range contentResources {
		perms = append(perms, RolePermission{Role: RoleEditor, Resource: res, Action: "*"})
	}
	return perms
}

// roleInheritance is loaded as casbin "g" lines, child first.
var roleInheritance = [][2]string{
	{RoleEditor, RoleViewer},
	{RoleStaff, RoleViewer},
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleStaff, RoleViewer:
		return true
	}
	return false
}
