package dashboard

import (
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/news"
	"nupo-consult/internal/newsletter"
)

type ServiceStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Featured int64 `json:"featured"`
}

type ProjectStats struct {
	Total      int64 `json:"total"`
	Public     int64 `json:"public"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"in_progress"`
}

type TeamStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Featured int64 `json:"featured"`
}

type ContentStats struct {
	PublishedNews        int64 `json:"published_news"`
	ApprovedTestimonials int64 `json:"approved_testimonials"`
	ActivePartners       int64 `json:"active_partners"`
}

type InquiryStats struct {
	Total               int64 `json:"total"`
	ThisWeek            int64 `json:"this_week"`
	ThisMonth           int64 `json:"this_month"`
	Unresponded         int64 `json:"unresponded"`
	HighPriorityPending int64 `json:"high_priority_pending"`
}

type NewsletterStats struct {
	Active    int64 `json:"active"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
}

type Recent struct {
	Inquiries   []inquiry.InquiryResponse       `json:"inquiries"`
	Subscribers []newsletter.SubscriberResponse `json:"subscribers"`
	News        []news.ArticleResponse          `json:"news"`
}

// Bucket is one row of a GROUP BY breakdown.
type Bucket struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

type Breakdowns struct {
	InquiryTypes  []Bucket `json:"inquiry_types"`
	ProjectStatus []Bucket `json:"project_status"`
}

type Stats struct {
	Services   ServiceStats    `json:"services"`
	Projects   ProjectStats    `json:"projects"`
	Team       TeamStats       `json:"team"`
	Content    ContentStats    `json:"content"`
	Inquiries  InquiryStats    `json:"inquiries"`
	Newsletter NewsletterStats `json:"newsletter"`
	Recent     Recent          `json:"recent"`
	Breakdowns Breakdowns      `json:"breakdowns"`
}
