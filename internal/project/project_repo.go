package project

import (
	"context"
	"strings"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/shared/scope"
	"nupo-consult/internal/team"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	List(ctx context.Context, filter ListFilter) ([]Project, int64, error)
	Save(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	FindServices(ctx context.Context, ids []uuid.UUID) ([]catalog.Service, error)
	FindTeamMembers(ctx context.Context, ids []uuid.UUID) ([]team.TeamMember, error)
	ReplaceServices(ctx context.Context, p *Project, services []catalog.Service) error
	ReplaceTeamMembers(ctx context.Context, p *Project, members []team.TeamMember) error

	ListPublic(ctx context.Context, projectType string, status string, page int, pageSize int) ([]Project, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]Project, error)
	FindPublicBySlug(ctx context.Context, slug string) (*Project, error)
	ListRelated(ctx context.Context, projectType ProjectType, excludeID uuid.UUID, limit int) ([]Project, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

const projectOrder = "created_at DESC"

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Preload("ServicesProvided").
		Preload("TeamMembers").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&Project{})
	if filter.ProjectType != "" {
		q = q.Where("project_type = ?", filter.ProjectType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.IsPublic != nil {
		q = q.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(client) LIKE ? OR LOWER(location) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Project
	err := q.Preload("ServicesProvided").
		Order(projectOrder).
		Scopes(scope.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Save(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

// Delete clears both join tables before removing the row.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	p := &Project{ID: id}
	if err := r.db.WithContext(ctx).Model(p).Association("ServicesProvided").Clear(); err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(p).Association("TeamMembers").Clear(); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) FindServices(ctx context.Context, ids []uuid.UUID) ([]catalog.Service, error) {
	var rows []catalog.Service
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) FindTeamMembers(ctx context.Context, ids []uuid.UUID) ([]team.TeamMember, error) {
	var rows []team.TeamMember
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) ReplaceServices(ctx context.Context, p *Project, services []catalog.Service) error {
	return r.db.WithContext(ctx).
		Model(p).
		Omit("ServicesProvided.*").
		Association("ServicesProvided").
		Replace(services)
}

func (r *repository) ReplaceTeamMembers(ctx context.Context, p *Project, members []team.TeamMember) error {
	return r.db.WithContext(ctx).
		Model(p).
		Omit("TeamMembers.*").
		Association("TeamMembers").
		Replace(members)
}

func (r *repository) ListPublic(ctx context.Context, projectType string, status string, page int, pageSize int) ([]Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&Project{}).Scopes(scope.Public)
	if projectType != "" {
		q = q.Where("project_type = ?", projectType)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Project
	err := q.Order(projectOrder).
		Scopes(scope.Paginate(page, pageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]Project, error) {
	var rows []Project
	err := r.db.WithContext(ctx).
		Scopes(scope.Public, scope.Featured, scope.Limit(limit)).
		Order(projectOrder).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPublicBySlug(ctx context.Context, slug string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(scope.Public).
		Preload("ServicesProvided").
		Preload("TeamMembers").
		Where("slug = ?", slug).
		First(&p).Error
	return &p, err
}

func (r *repository) ListRelated(ctx context.Context, projectType ProjectType, excludeID uuid.UUID, limit int) ([]Project, error) {
	var rows []Project
	err := r.db.WithContext(ctx).
		Scopes(scope.Public, scope.ExcludeID(excludeID), scope.Limit(limit)).
		Where("project_type = ?", projectType).
		Order(projectOrder).
		Find(&rows).Error
	return rows, err
}
