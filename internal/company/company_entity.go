package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SingletonKey is the only value the singleton_key column may hold; its
// unique index keeps each singleton table at one row.
const SingletonKey = "default"

type CompanyProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SingletonKey string    `gorm:"size:16;not null;uniqueIndex:uq_company_profiles_singleton"`
	Name         string    `gorm:"size:200;not null"`
	Tagline      string    `gorm:"size:300"`
	Description  string    `gorm:"type:text"`
	Logo         string    `gorm:"size:255"`
	Phone        string    `gorm:"size:20"`
	Email        string    `gorm:"size:254"`
	Address      string    `gorm:"type:text"`
	WorkingHours string    `gorm:"size:100"`
	FacebookURL  string    `gorm:"size:255"`
	TwitterURL   string    `gorm:"size:255"`
	LinkedinURL  string    `gorm:"size:255"`
	InstagramURL string    `gorm:"size:255"`
	YoutubeURL   string    `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}

func (p *CompanyProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.SingletonKey = SingletonKey
	return nil
}

type CompanyStats struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SingletonKey      string    `gorm:"size:16;not null;uniqueIndex:uq_company_stats_singleton"`
	YearsExperience   int       `gorm:"not null;default:0"`
	ProjectsCompleted int       `gorm:"not null;default:0"`
	HappyClients      int       `gorm:"not null;default:0"`
	SupportHours      int       `gorm:"not null;default:24"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (CompanyStats) TableName() string {
	return "company_stats"
}

func (s *CompanyStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.SingletonKey = SingletonKey
	return nil
}
