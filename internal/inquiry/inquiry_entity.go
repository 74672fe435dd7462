package inquiry

import (
	"time"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryType string

const (
	TypeGeneral      InquiryType = "general"
	TypeQuote        InquiryType = "quote"
	TypeConsultation InquiryType = "consultation"
	TypePartnership  InquiryType = "partnership"
	TypeCareer       InquiryType = "career"
	TypeComplaint    InquiryType = "complaint"
)

func (t InquiryType) Valid() bool {
	switch t {
	case TypeGeneral, TypeQuote, TypeConsultation, TypePartnership, TypeCareer, TypeComplaint:
		return true
	}
	return false
}

type TypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TypeOptions lists the inquiry types in form order.
func TypeOptions() []TypeOption {
	return []TypeOption{
		{Value: string(TypeGeneral), Label: "General Inquiry"},
		{Value: string(TypeQuote), Label: "Request Quote"},
		{Value: string(TypeConsultation), Label: "Consultation"},
		{Value: string(TypePartnership), Label: "Partnership"},
		{Value: string(TypeCareer), Label: "Career Opportunity"},
		{Value: string(TypeComplaint), Label: "Complaint"},
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type ContactInquiry struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name               string            `gorm:"size:100;not null"`
	Email              string            `gorm:"size:254;not null;index"`
	Phone              string            `gorm:"size:20"`
	Company            string            `gorm:"size:200"`
	InquiryType        InquiryType       `gorm:"size:20;not null;default:general;index"`
	Priority           Priority          `gorm:"size:10;not null;default:medium;index"`
	Subject            string            `gorm:"size:200;not null"`
	Message            string            `gorm:"type:text;not null"`
	ServicesInterested []catalog.Service `gorm:"many2many:contact_inquiry_services;constraint:OnDelete:CASCADE"`
	ProjectBudget      string            `gorm:"size:100"`
	ProjectTimeline    string            `gorm:"size:100"`
	IsResponded        bool              `gorm:"not null;default:false;index"`
	RespondedByID      *uuid.UUID        `gorm:"type:uuid"`
	RespondedBy        *user.User        `gorm:"foreignKey:RespondedByID;constraint:OnDelete:SET NULL"`
	ResponseDate       *time.Time
	ResponseNotes      string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}

func (i *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
