package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetProfile(ctx context.Context) (*CompanyProfile, error)
	CountProfiles(ctx context.Context) (int64, error)
	CreateProfile(ctx context.Context, p *CompanyProfile) error
	SaveProfile(ctx context.Context, p *CompanyProfile) error
	GetStats(ctx context.Context) (*CompanyStats, error)
	CountStats(ctx context.Context) (int64, error)
	CreateStats(ctx context.Context, s *CompanyStats) error
	SaveStats(ctx context.Context, s *CompanyStats) error
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

func (r *repository) GetProfile(ctx context.Context) (*CompanyProfile, error) {
	var p CompanyProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&p).Error
	return &p, err
}

func (r *repository) CountProfiles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&CompanyProfile{}).Count(&n).Error
	return n, err
}

func (r *repository) CreateProfile(ctx context.Context, p *CompanyProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) SaveProfile(ctx context.Context, p *CompanyProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) GetStats(ctx context.Context) (*CompanyStats, error) {
	var s CompanyStats
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error
	return &s, err
}

func (r *repository) CountStats(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&CompanyStats{}).Count(&n).Error
	return n, err
}

func (r *repository) CreateStats(ctx context.Context, s *CompanyStats) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) SaveStats(ctx context.Context, s *CompanyStats) error {
	return r.db.WithContext(ctx).Save(s).Error
}
