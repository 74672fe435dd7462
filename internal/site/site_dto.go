package site

import (
	"nupo-consult/internal/catalog"
	"nupo-consult/internal/company"
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/news"
	"nupo-consult/internal/partner"
	"nupo-consult/internal/project"
	"nupo-consult/internal/seo"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"
)

// Page is the context shared by every public page.
type Page struct {
	Company *company.Context      `json:"company"`
	SEO     *seo.SettingsResponse `json:"seo"`
}

type HomePage struct {
	Page
	FeaturedServices []catalog.ServiceResponse         `json:"featured_services"`
	FeaturedProjects []project.ProjectResponse         `json:"featured_projects"`
	Testimonials     []testimonial.TestimonialResponse `json:"testimonials"`
	LatestNews       []news.ArticleResponse            `json:"latest_news"`
	Partners         []partner.PartnerResponse         `json:"partners"`
	TeamMembers      []team.TeamMemberResponse         `json:"team_members"`
}

type ServicesPage struct {
	Page
	catalog.Listing
}

type ServiceDetailPage struct {
	Page
	catalog.Detail
}

type ProjectsPage struct {
	Page
	project.Listing
}

type ProjectDetailPage struct {
	Page
	project.Detail
}

type NewsPage struct {
	Page
	news.Listing
}

type NewsDetailPage struct {
	Page
	news.Detail
}

type TeamPage struct {
	Page
	TeamMembers []team.TeamMemberResponse `json:"team_members"`
}

type AboutPage struct {
	Page
	TeamMembers []team.TeamMemberResponse `json:"team_members"`
	Partners    []partner.PartnerResponse `json:"partners"`
}

type PartnersPage struct {
	Page
	Partners []partner.PartnerResponse `json:"partners"`
}

type ContactPage struct {
	Page
	Services     []catalog.ServiceResponse `json:"services"`
	InquiryTypes []inquiry.TypeOption      `json:"inquiry_types"`
}
