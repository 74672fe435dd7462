package testimonial

import (
	"time"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/project"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Testimonial struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ClientName     string           `gorm:"size:100;not null"`
	ClientCompany  string           `gorm:"size:200"`
	ClientPosition string           `gorm:"size:100"`
	ClientPhoto    string           `gorm:"size:255"`
	Content        string           `gorm:"type:text;not null"`
	Rating         int              `gorm:"not null;default:5;check:chk_testimonials_rating,rating >= 1 AND rating <= 5"`
	ProjectID      *uuid.UUID       `gorm:"type:uuid;index"`
	Project        *project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	ServiceID      *uuid.UUID       `gorm:"type:uuid;index"`
	Service        *catalog.Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL"`
	IsFeatured     bool             `gorm:"not null;default:false"`
	IsApproved     bool             `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Testimonial) TableName() string {
	return "testimonials"
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
