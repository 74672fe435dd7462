package catalog

import "time"

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
	IconClass   string `json:"icon_class" binding:"max=50"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order" binding:"min=0"`
}

type ServiceRequest struct {
	CategoryID       *string  `json:"category_id" binding:"omitempty,uuid"`
	Title            string   `json:"title" binding:"required,max=200"`
	Slug             string   `json:"slug" binding:"max=200"`
	IconClass        string   `json:"icon_class" binding:"max=50"`
	ShortDescription string   `json:"short_description" binding:"required,max=300"`
	FullDescription  string   `json:"full_description" binding:"required"`
	Features         []string `json:"features" binding:"dive,max=200"`
	PriceRange       string   `json:"price_range" binding:"max=100"`
	Duration         string   `json:"duration" binding:"max=100"`
	IsFeatured       bool     `json:"is_featured"`
	IsActive         *bool    `json:"is_active"`
	SortOrder        int      `json:"sort_order" binding:"min=0"`
	MetaTitle        string   `json:"meta_title" binding:"max=60"`
	MetaDescription  string   `json:"meta_description" binding:"max=160"`
}

type CategoryFilter struct {
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

type ServiceFilter struct {
	CategoryID string
	IsActive   *bool
	IsFeatured *bool
	Search     string
	Page       int
	PageSize   int
}

type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	IconClass    string    `json:"icon_class"`
	IsActive     bool      `json:"is_active"`
	SortOrder    int       `json:"sort_order"`
	ServiceCount int64     `json:"service_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID               string           `json:"id"`
	Category         *CategorySummary `json:"category"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	IconClass        string           `json:"icon_class"`
	ShortDescription string           `json:"short_description"`
	FullDescription  string           `json:"full_description,omitempty"`
	Features         []string         `json:"features"`
	PriceRange       string           `json:"price_range"`
	Duration         string           `json:"duration"`
	IsFeatured       bool             `json:"is_featured"`
	IsActive         bool             `json:"is_active"`
	SortOrder        int              `json:"sort_order"`
	MetaTitle        string           `json:"meta_title"`
	MetaDescription  string           `json:"meta_description"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Listing is the services page: active services plus the active
// categories for the filter sidebar.
type Listing struct {
	Search     string             `json:"search"`
	Services   []ServiceResponse  `json:"services"`
	Categories []CategoryResponse `json:"categories"`
}

type Detail struct {
	Service ServiceResponse   `json:"service"`
	Related []ServiceResponse `json:"related"`
}

func mapCategory(c ServiceCategory, count int64) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		IconClass:    c.IconClass,
		IsActive:     c.IsActive,
		SortOrder:    c.SortOrder,
		ServiceCount: count,
		CreatedAt:    c.CreatedAt,
	}
}

func mapService(s Service) ServiceResponse {
	resp := ServiceResponse{
		ID:               s.ID.String(),
		Title:            s.Title,
		Slug:             s.Slug,
		IconClass:        s.IconClass,
		ShortDescription: s.ShortDescription,
		FullDescription:  s.FullDescription,
		Features:         []string(s.Features),
		PriceRange:       s.PriceRange,
		Duration:         s.Duration,
		IsFeatured:       s.IsFeatured,
		IsActive:         s.IsActive,
		SortOrder:        s.SortOrder,
		MetaTitle:        s.MetaTitle,
		MetaDescription:  s.MetaDescription,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	if s.Category != nil {
		resp.Category = &CategorySummary{
			ID:   s.Category.ID.String(),
			Name: s.Category.Name,
			Slug: s.Category.Slug,
		}
	}
	return resp
}

func mapServices(in []Service) []ServiceResponse {
	out := make([]ServiceResponse, len(in))
	for i, s := range in {
		out[i] = mapService(s)
	}
	return out
}
