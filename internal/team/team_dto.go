package team

import (
	"time"

	"gorm.io/datatypes"
)

type TeamMemberRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Slug            string   `json:"slug" binding:"max=100"`
	Position        string   `json:"position" binding:"required,max=100"`
	PositionType    string   `json:"position_type" binding:"required"`
	ProfileImage    string   `json:"profile_image" binding:"max=255"`
	Bio             string   `json:"bio" binding:"required"`
	ShortBio        string   `json:"short_bio" binding:"max=300"`
	Qualifications  string   `json:"qualifications"`
	ExperienceYears int      `json:"experience_years" binding:"min=0"`
	Specializations []string `json:"specializations"`
	Email           string   `json:"email" binding:"omitempty,email"`
	Phone           string   `json:"phone" binding:"max=20"`
	LinkedInURL     string   `json:"linkedin_url" binding:"omitempty,url"`
	IsFeatured      bool     `json:"is_featured"`
	IsActive        *bool    `json:"is_active"`
	SortOrder       int      `json:"sort_order" binding:"min=0"`
}

type ListFilter struct {
	PositionType string
	IsActive     *bool
	IsFeatured   *bool
	Search       string
	Page         int
	PageSize     int
}

type TeamMemberResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Position        string    `json:"position"`
	PositionType    string    `json:"position_type"`
	ProfileImage    string    `json:"profile_image"`
	Bio             string    `json:"bio"`
	ShortBio        string    `json:"short_bio"`
	Qualifications  string    `json:"qualifications"`
	ExperienceYears int       `json:"experience_years"`
	Specializations []string  `json:"specializations"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	LinkedInURL     string    `json:"linkedin_url"`
	IsFeatured      bool      `json:"is_featured"`
	IsActive        bool      `json:"is_active"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
}

func (req TeamMemberRequest) apply(m *TeamMember) {
	m.Name = req.Name
	m.Position = req.Position
	m.PositionType = PositionType(req.PositionType)
	m.ProfileImage = req.ProfileImage
	m.Bio = req.Bio
	m.ShortBio = req.ShortBio
	m.Qualifications = req.Qualifications
	m.ExperienceYears = req.ExperienceYears
	m.Specializations = datatypes.JSONSlice[string](append([]string{}, req.Specializations...))
	m.Email = req.Email
	m.Phone = req.Phone
	m.LinkedInURL = req.LinkedInURL
	m.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	m.SortOrder = req.SortOrder
}

func MapMember(m TeamMember) TeamMemberResponse {
	specs := []string(m.Specializations)
	if specs == nil {
		specs = []string{}
	}
	return TeamMemberResponse{
		ID:              m.ID.String(),
		Name:            m.Name,
		Slug:            m.Slug,
		Position:        m.Position,
		PositionType:    string(m.PositionType),
		ProfileImage:    m.ProfileImage,
		Bio:             m.Bio,
		ShortBio:        m.ShortBio,
		Qualifications:  m.Qualifications,
		ExperienceYears: m.ExperienceYears,
		Specializations: specs,
		Email:           m.Email,
		Phone:           m.Phone,
		LinkedInURL:     m.LinkedInURL,
		IsFeatured:      m.IsFeatured,
		IsActive:        m.IsActive,
		SortOrder:       m.SortOrder,
		CreatedAt:       m.CreatedAt,
	}
}

func MapMembers(in []TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, len(in))
	for i, m := range in {
		out[i] = MapMember(m)
	}
	return out
}
