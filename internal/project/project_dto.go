package project

import (
	"time"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/shared/response"
	"nupo-consult/internal/team"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ProjectRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	Slug          string           `json:"slug" binding:"max=200"`
	Client        string           `json:"client" binding:"required,max=200"`
	ProjectType   string           `json:"project_type" binding:"required"`
	Status        string           `json:"status"`
	Description   string           `json:"description" binding:"required"`
	Location      string           `json:"location" binding:"required,max=200"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	Budget        *decimal.Decimal `json:"budget"`
	FeaturedImage string           `json:"featured_image" binding:"max=255"`
	GalleryImages []string         `json:"gallery_images"`
	ServiceIDs    []string         `json:"service_ids" binding:"dive,uuid"`
	TeamMemberIDs []string         `json:"team_member_ids" binding:"dive,uuid"`
	IsFeatured    bool             `json:"is_featured"`
	IsPublic      *bool            `json:"is_public"`
}

type ListFilter struct {
	ProjectType string
	Status      string
	IsPublic    *bool
	IsFeatured  *bool
	Search      string
	Page        int
	PageSize    int
}

type ServiceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type MemberSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Position string `json:"position"`
}

type ProjectResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Client           string           `json:"client"`
	ProjectType      string           `json:"project_type"`
	Status           string           `json:"status"`
	Description      string           `json:"description"`
	Location         string           `json:"location"`
	StartDate        *string          `json:"start_date"`
	EndDate          *string          `json:"end_date"`
	Budget           *decimal.Decimal `json:"budget"`
	FeaturedImage    string           `json:"featured_image"`
	GalleryImages    []string         `json:"gallery_images"`
	ServicesProvided []ServiceSummary `json:"services_provided"`
	TeamMembers      []MemberSummary  `json:"team_members"`
	IsFeatured       bool             `json:"is_featured"`
	IsPublic         bool             `json:"is_public"`
	CreatedAt        time.Time        `json:"created_at"`
}

type Listing struct {
	ProjectType string                  `json:"project_type"`
	Status      string                  `json:"status"`
	Projects    []ProjectResponse       `json:"projects"`
	Meta        response.PaginationMeta `json:"meta"`
}

type Detail struct {
	Project ProjectResponse   `json:"project"`
	Related []ProjectResponse `json:"related"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func mapServiceSummaries(in []catalog.Service) []ServiceSummary {
	out := make([]ServiceSummary, len(in))
	for i, s := range in {
		out[i] = ServiceSummary{ID: s.ID.String(), Title: s.Title, Slug: s.Slug}
	}
	return out
}

func mapMemberSummaries(in []team.TeamMember) []MemberSummary {
	out := make([]MemberSummary, len(in))
	for i, m := range in {
		out[i] = MemberSummary{ID: m.ID.String(), Name: m.Name, Slug: m.Slug, Position: m.Position}
	}
	return out
}

func MapProject(p Project) ProjectResponse {
	gallery := []string(p.GalleryImages)
	if gallery == nil {
		gallery = []string{}
	}
	return ProjectResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		Slug:             p.Slug,
		Client:           p.Client,
		ProjectType:      string(p.ProjectType),
		Status:           string(p.Status),
		Description:      p.Description,
		Location:         p.Location,
		StartDate:        formatDate(p.StartDate),
		EndDate:          formatDate(p.EndDate),
		Budget:           p.Budget,
		FeaturedImage:    p.FeaturedImage,
		GalleryImages:    gallery,
		ServicesProvided: mapServiceSummaries(p.ServicesProvided),
		TeamMembers:      mapMemberSummaries(p.TeamMembers),
		IsFeatured:       p.IsFeatured,
		IsPublic:         p.IsPublic,
		CreatedAt:        p.CreatedAt,
	}
}

func MapProjects(in []Project) []ProjectResponse {
	out := make([]ProjectResponse, len(in))
	for i, p := range in {
		out[i] = MapProject(p)
	}
	return out
}
