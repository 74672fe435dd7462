package seo

import "strings"

type SettingsRequest struct {
	PageName        string `json:"page_name" binding:"required"`
	MetaTitle       string `json:"meta_title" binding:"max=60"`
	MetaDescription string `json:"meta_description" binding:"max=160"`
	MetaKeywords    string `json:"meta_keywords" binding:"max=255"`
	OGTitle         string `json:"og_title" binding:"max=60"`
	OGDescription   string `json:"og_description" binding:"max=160"`
	OGImage         string `json:"og_image" binding:"max=255"`
	CanonicalURL    string `json:"canonical_url" binding:"omitempty,url,max=255"`
	RobotsMeta      string `json:"robots_meta" binding:"max=100"`
}

func (r SettingsRequest) apply(s *Settings) {
	s.PageName = PageName(r.PageName)
	s.MetaTitle = r.MetaTitle
	s.MetaDescription = r.MetaDescription
	s.MetaKeywords = r.MetaKeywords
	s.OGTitle = r.OGTitle
	s.OGDescription = r.OGDescription
	s.OGImage = r.OGImage
	s.CanonicalURL = r.CanonicalURL
	s.RobotsMeta = strings.TrimSpace(r.RobotsMeta)
	if s.RobotsMeta == "" {
		s.RobotsMeta = DefaultRobotsMeta
	}
}

type SettingsResponse struct {
	ID              string `json:"id"`
	PageName        string `json:"page_name"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	OGTitle         string `json:"og_title"`
	OGDescription   string `json:"og_description"`
	OGImage         string `json:"og_image"`
	CanonicalURL    string `json:"canonical_url"`
	RobotsMeta      string `json:"robots_meta"`
}

func MapSettings(s Settings) SettingsResponse {
	return SettingsResponse{
		ID:              s.ID.String(),
		PageName:        string(s.PageName),
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		MetaKeywords:    s.MetaKeywords,
		OGTitle:         s.OGTitle,
		OGDescription:   s.OGDescription,
		OGImage:         s.OGImage,
		CanonicalURL:    s.CanonicalURL,
		RobotsMeta:      s.RobotsMeta,
	}
}
