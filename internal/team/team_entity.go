package team

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PositionType string

const (
	PositionCEO        PositionType = "ceo"
	PositionDirector   PositionType = "director"
	PositionManager    PositionType = "manager"
	PositionEngineer   PositionType = "engineer"
	PositionConsultant PositionType = "consultant"
	PositionSupervisor PositionType = "supervisor"
	PositionSpecialist PositionType = "specialist"
)

func (p PositionType) Valid() bool {
	switch p {
	case PositionCEO, PositionDirector, PositionManager, PositionEngineer,
		PositionConsultant, PositionSupervisor, PositionSpecialist:
		return true
	}
	return false
}

type TeamMember struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name            string                      `gorm:"size:100;not null"`
	Slug            string                      `gorm:"size:100;not null;uniqueIndex:uq_team_members_slug"`
	Position        string                      `gorm:"size:100;not null"`
	PositionType    PositionType                `gorm:"size:20;not null"`
	ProfileImage    string                      `gorm:"size:255"`
	Bio             string                      `gorm:"type:text;not null"`
	ShortBio        string                      `gorm:"size:300"`
	Qualifications  string                      `gorm:"type:text"`
	ExperienceYears int                         `gorm:"not null;default:0"`
	Specializations datatypes.JSONSlice[string] `gorm:"not null"`
	Email           string                      `gorm:"size:254"`
	Phone           string                      `gorm:"size:20"`
	LinkedInURL     string                      `gorm:"column:linkedin_url;size:255"`
	IsFeatured      bool                        `gorm:"not null;default:false;index"`
	IsActive        bool                        `gorm:"not null;index"`
	SortOrder       int                         `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Specializations == nil {
		m.Specializations = datatypes.JSONSlice[string]{}
	}
	return nil
}
