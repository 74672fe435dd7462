package partner

import (
	"strings"
	"time"

	partnererrors "nupo-consult/internal/partner/errors"
)

const dateLayout = "2006-01-02"

type PartnerRequest struct {
	Name                 string `json:"name" binding:"required,max=200"`
	Slug                 string `json:"slug" binding:"max=200"`
	PartnerType          string `json:"partner_type" binding:"required"`
	Description          string `json:"description"`
	Logo                 string `json:"logo" binding:"max=255"`
	WebsiteURL           string `json:"website_url" binding:"omitempty,url"`
	PartnershipStartDate string `json:"partnership_start_date"`
	IsFeatured           bool   `json:"is_featured"`
	IsActive             *bool  `json:"is_active"`
	SortOrder            int    `json:"sort_order" binding:"min=0"`
}

type ListFilter struct {
	PartnerType string
	IsActive    *bool
	Search      string
	Page        int
	PageSize    int
}

type PartnerResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Slug                 string    `json:"slug"`
	PartnerType          string    `json:"partner_type"`
	Description          string    `json:"description"`
	Logo                 string    `json:"logo"`
	WebsiteURL           string    `json:"website_url"`
	PartnershipStartDate *string   `json:"partnership_start_date"`
	IsFeatured           bool      `json:"is_featured"`
	IsActive             bool      `json:"is_active"`
	SortOrder            int       `json:"sort_order"`
	CreatedAt            time.Time `json:"created_at"`
}

func (req PartnerRequest) apply(p *Partner) error {
	if !PartnerType(req.PartnerType).Valid() {
		return partnererrors.ErrInvalidPartnerType
	}

	p.PartnershipStartDate = nil
	if raw := strings.TrimSpace(req.PartnershipStartDate); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return partnererrors.ErrInvalidStartDate
		}
		p.PartnershipStartDate = &d
	}

	p.Name = req.Name
	p.PartnerType = PartnerType(req.PartnerType)
	p.Description = req.Description
	p.Logo = req.Logo
	p.WebsiteURL = req.WebsiteURL
	p.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.SortOrder = req.SortOrder
	return nil
}

func MapPartner(p Partner) PartnerResponse {
	resp := PartnerResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Slug:        p.Slug,
		PartnerType: string(p.PartnerType),
		Description: p.Description,
		Logo:        p.Logo,
		WebsiteURL:  p.WebsiteURL,
		IsFeatured:  p.IsFeatured,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
	}
	if p.PartnershipStartDate != nil {
		d := p.PartnershipStartDate.Format(dateLayout)
		resp.PartnershipStartDate = &d
	}
	return resp
}

func MapPartners(in []Partner) []PartnerResponse {
	out := make([]PartnerResponse, len(in))
	for i, p := range in {
		out[i] = MapPartner(p)
	}
	return out
}
