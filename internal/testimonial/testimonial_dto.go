package testimonial

import "time"

type TestimonialRequest struct {
	ClientName     string  `json:"client_name" binding:"required,max=100"`
	ClientCompany  string  `json:"client_company" binding:"max=200"`
	ClientPosition string  `json:"client_position" binding:"max=100"`
	ClientPhoto    string  `json:"client_photo" binding:"max=255"`
	Content        string  `json:"content" binding:"required"`
	Rating         int     `json:"rating"`
	ProjectID      *string `json:"project_id" binding:"omitempty,uuid"`
	ServiceID      *string `json:"service_id" binding:"omitempty,uuid"`
	IsFeatured     bool    `json:"is_featured"`
	IsApproved     bool    `json:"is_approved"`
}

type ListFilter struct {
	Rating     int
	IsApproved *bool
	IsFeatured *bool
	Search     string
	Page       int
	PageSize   int
}

type LinkSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TestimonialResponse struct {
	ID             string       `json:"id"`
	ClientName     string       `json:"client_name"`
	ClientCompany  string       `json:"client_company"`
	ClientPosition string       `json:"client_position"`
	ClientPhoto    string       `json:"client_photo"`
	Content        string       `json:"content"`
	Rating         int          `json:"rating"`
	Project        *LinkSummary `json:"project"`
	Service        *LinkSummary `json:"service"`
	IsFeatured     bool         `json:"is_featured"`
	IsApproved     bool         `json:"is_approved"`
	CreatedAt      time.Time    `json:"created_at"`
}

func MapTestimonial(t Testimonial) TestimonialResponse {
	res := TestimonialResponse{
		ID:             t.ID.String(),
		ClientName:     t.ClientName,
		ClientCompany:  t.ClientCompany,
		ClientPosition: t.ClientPosition,
		ClientPhoto:    t.ClientPhoto,
		Content:        t.Content,
		Rating:         t.Rating,
		IsFeatured:     t.IsFeatured,
		IsApproved:     t.IsApproved,
		CreatedAt:      t.CreatedAt,
	}
	if t.Project != nil {
		res.Project = &LinkSummary{ID: t.Project.ID.String(), Name: t.Project.Name, Slug: t.Project.Slug}
	}
	if t.Service != nil {
		res.Service = &LinkSummary{ID: t.Service.ID.String(), Name: t.Service.Title, Slug: t.Service.Slug}
	}
	return res
}

func MapTestimonials(rows []Testimonial) []TestimonialResponse {
	res := make([]TestimonialResponse, 0, len(rows))
	for _, t := range rows {
		res = append(res, MapTestimonial(t))
	}
	return res
}
