package project

import (
	"time"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/team"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectType string

const (
	TypeResidential    ProjectType = "residential"
	TypeCommercial     ProjectType = "commercial"
	TypeIndustrial     ProjectType = "industrial"
	TypeInfrastructure ProjectType = "infrastructure"
	TypeInstitutional  ProjectType = "institutional"
)

func (t ProjectType) Valid() bool {
	switch t {
	case TypeResidential, TypeCommercial, TypeIndustrial, TypeInfrastructure, TypeInstitutional:
		return true
	}
	return false
}

type Status string

const (
	StatusPlanning     Status = "planning"
	StatusDesign       Status = "design"
	StatusConstruction Status = "construction"
	StatusCompleted    Status = "completed"
	StatusMaintenance  Status = "maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusDesign, StatusConstruction, StatusCompleted, StatusMaintenance:
		return true
	}
	return false
}

type Project struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name             string                      `gorm:"size:200;not null"`
	Slug             string                      `gorm:"size:200;not null;uniqueIndex:uq_projects_slug"`
	Client           string                      `gorm:"size:200;not null"`
	ProjectType      ProjectType                 `gorm:"size:20;not null;index"`
	Status           Status                      `gorm:"size:20;not null;default:completed;index"`
	Description      string                      `gorm:"type:text;not null"`
	Location         string                      `gorm:"size:200;not null"`
	StartDate        *time.Time                  `gorm:"type:date"`
	EndDate          *time.Time                  `gorm:"type:date"`
	Budget           *decimal.Decimal            `gorm:"type:decimal(15,2)"`
	FeaturedImage    string                      `gorm:"size:255"`
	GalleryImages    datatypes.JSONSlice[string] `gorm:"not null"`
	ServicesProvided []catalog.Service           `gorm:"many2many:project_services;constraint:OnDelete:CASCADE"`
	TeamMembers      []team.TeamMember           `gorm:"many2many:project_team_members;constraint:OnDelete:CASCADE"`
	IsFeatured       bool                        `gorm:"not null;default:false"`
	IsPublic         bool                        `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.GalleryImages == nil {
		p.GalleryImages = datatypes.JSONSlice[string]{}
	}
	return nil
}
