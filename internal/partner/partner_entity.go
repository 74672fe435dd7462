package partner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartnerType string

const (
	TypeGovernment    PartnerType = "government"
	TypePrivate       PartnerType = "private"
	TypeNGO           PartnerType = "ngo"
	TypeAcademic      PartnerType = "academic"
	TypeInternational PartnerType = "international"
	TypeSupplier      PartnerType = "supplier"
)

func (p PartnerType) Valid() bool {
	switch p {
	case TypeGovernment, TypePrivate, TypeNGO, TypeAcademic, TypeInternational, TypeSupplier:
		return true
	}
	return false
}

type Partner struct {
	ID                   uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name                 string      `gorm:"size:200;not null"`
	Slug                 string      `gorm:"size:200;not null;uniqueIndex:uq_partners_slug"`
	PartnerType          PartnerType `gorm:"size:20;not null"`
	Description          string      `gorm:"type:text"`
	Logo                 string      `gorm:"size:255"`
	WebsiteURL           string      `gorm:"size:255"`
	PartnershipStartDate *time.Time  `gorm:"type:date"`
	IsFeatured           bool        `gorm:"not null;default:false"`
	IsActive             bool        `gorm:"not null;index"`
	SortOrder            int         `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Partner) TableName() string {
	return "partners"
}

func (p *Partner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
