package seo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=seo_repo.go -destination=mock/seo_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Settings) error
	FindByID(ctx context.Context, id uuid.UUID) (*Settings, error)
	FindByPage(ctx context.Context, page PageName) (*Settings, error)
	List(ctx context.Context) ([]Settings, error)
	Save(ctx context.Context, s *Settings) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Settings) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByPage(ctx context.Context, page PageName) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).First(&s, "page_name = ?", page).Error
	return &s, err
}

func (r *repository) List(ctx context.Context) ([]Settings, error) {
	var rows []Settings
	err := r.db.WithContext(ctx).Order("page_name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Save(ctx context.Context, s *Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Settings{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
