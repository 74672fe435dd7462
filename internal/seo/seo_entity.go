package seo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageName string

const (
	PageHome     PageName = "home"
	PageAbout    PageName = "about"
	PageServices PageName = "services"
	PageProjects PageName = "projects"
	PageNews     PageName = "news"
	PageTeam     PageName = "team"
	PagePartners PageName = "partners"
	PageContact  PageName = "contact"
)

func (p PageName) Valid() bool {
	switch p {
	case PageHome, PageAbout, PageServices, PageProjects, PageNews, PageTeam, PagePartners, PageContact:
		return true
	}
	return false
}

const DefaultRobotsMeta = "index, follow"

type Settings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PageName        PageName  `gorm:"size:50;not null;uniqueIndex:uq_seo_settings_page_name"`
	MetaTitle       string    `gorm:"size:60"`
	MetaDescription string    `gorm:"size:160"`
	MetaKeywords    string    `gorm:"size:255"`
	OGTitle         string    `gorm:"column:og_title;size:60"`
	OGDescription   string    `gorm:"column:og_description;size:160"`
	OGImage         string    `gorm:"column:og_image;size:255"`
	CanonicalURL    string    `gorm:"column:canonical_url;size:255"`
	RobotsMeta      string    `gorm:"size:100;not null;default:'index, follow'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Settings) TableName() string {
	return "seo_settings"
}

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.RobotsMeta == "" {
		s.RobotsMeta = DefaultRobotsMeta
	}
	return nil
}
