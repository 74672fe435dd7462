package company

import "time"

type ProfileRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Tagline      string `json:"tagline" binding:"max=300"`
	Description  string `json:"description"`
	Logo         string `json:"logo" binding:"max=255"`
	Phone        string `json:"phone" binding:"max=20"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours" binding:"max=100"`
	FacebookURL  string `json:"facebook_url" binding:"omitempty,url"`
	TwitterURL   string `json:"twitter_url" binding:"omitempty,url"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" binding:"omitempty,url"`
	YoutubeURL   string `json:"youtube_url" binding:"omitempty,url"`
}

type StatsRequest struct {
	YearsExperience   int `json:"years_experience" binding:"min=0"`
	ProjectsCompleted int `json:"projects_completed" binding:"min=0"`
	HappyClients      int `json:"happy_clients" binding:"min=0"`
	SupportHours      int `json:"support_hours" binding:"min=0,max=24"`
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	Description  string    `json:"description"`
	Logo         string    `json:"logo"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	WorkingHours string    `json:"working_hours"`
	FacebookURL  string    `json:"facebook_url"`
	TwitterURL   string    `json:"twitter_url"`
	LinkedinURL  string    `json:"linkedin_url"`
	InstagramURL string    `json:"instagram_url"`
	YoutubeURL   string    `json:"youtube_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StatsResponse struct {
	ID                string    `json:"id"`
	YearsExperience   int       `json:"years_experience"`
	ProjectsCompleted int       `json:"projects_completed"`
	HappyClients      int       `json:"happy_clients"`
	SupportHours      int       `json:"support_hours"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Context is the company block attached to every public page. Either part
// is nil while its singleton does not exist.
type Context struct {
	Profile *ProfileResponse `json:"profile"`
	Stats   *StatsResponse   `json:"stats"`
}

func mapProfile(p *CompanyProfile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Tagline:      p.Tagline,
		Description:  p.Description,
		Logo:         p.Logo,
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		WorkingHours: p.WorkingHours,
		FacebookURL:  p.FacebookURL,
		TwitterURL:   p.TwitterURL,
		LinkedinURL:  p.LinkedinURL,
		InstagramURL: p.InstagramURL,
		YoutubeURL:   p.YoutubeURL,
		UpdatedAt:    p.UpdatedAt,
	}
}

func mapStats(s *CompanyStats) StatsResponse {
	return StatsResponse{
		ID:                s.ID.String(),
		YearsExperience:   s.YearsExperience,
		ProjectsCompleted: s.ProjectsCompleted,
		HappyClients:      s.HappyClients,
		SupportHours:      s.SupportHours,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (r ProfileRequest) apply(p *CompanyProfile) {
	p.Name = r.Name
	p.Tagline = r.Tagline
	p.Description = r.Description
	p.Logo = r.Logo
	p.Phone = r.Phone
	p.Email = r.Email
	p.Address = r.Address
	p.WorkingHours = r.WorkingHours
	p.FacebookURL = r.FacebookURL
	p.TwitterURL = r.TwitterURL
	p.LinkedinURL = r.LinkedinURL
	p.InstagramURL = r.InstagramURL
	p.YoutubeURL = r.YoutubeURL
}

func (r StatsRequest) apply(s *CompanyStats) {
	s.YearsExperience = r.YearsExperience
	s.ProjectsCompleted = r.ProjectsCompleted
	s.HappyClients = r.HappyClients
	s.SupportHours = r.SupportHours
}
