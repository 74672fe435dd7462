package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex:uq_service_categories_slug"`
	Description string    `gorm:"type:text"`
	IconClass   string    `gorm:"size:50"`
	IsActive    bool      `gorm:"not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CategoryWithCount carries the derived number of services per category.
type CategoryWithCount struct {
	ServiceCategory `gorm:"embedded"`
	ServiceCount    int64
}

type Service struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CategoryID       *uuid.UUID                  `gorm:"type:uuid;index"`
	Category         *ServiceCategory            `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Title            string                      `gorm:"size:200;not null"`
	Slug             string                      `gorm:"size:200;not null;uniqueIndex:uq_services_slug"`
	IconClass        string                      `gorm:"size:50"`
	ShortDescription string                      `gorm:"size:300;not null"`
	FullDescription  string                      `gorm:"type:text;not null"`
	Features         datatypes.JSONSlice[string] `gorm:"not null"`
	PriceRange       string                      `gorm:"size:100"`
	Duration         string                      `gorm:"size:100"`
	IsFeatured       bool                        `gorm:"not null;default:false;index"`
	IsActive         bool                        `gorm:"not null;index"`
	SortOrder        int                         `gorm:"not null;default:0"`
	MetaTitle        string                      `gorm:"size:60"`
	MetaDescription  string                      `gorm:"size:160"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Features == nil {
		s.Features = datatypes.JSONSlice[string]{}
	}
	return nil
}
