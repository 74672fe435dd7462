package dashboard

import (
	"context"
	"time"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/news"
	"nupo-consult/internal/newsletter"
	"nupo-consult/internal/partner"
	"nupo-consult/internal/project"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/scope"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"

	"go.uber.org/zap"
)

const (
	recentLimit = 5
	week        = 7 * 24 * time.Hour
	month       = 30 * 24 * time.Hour
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

// counter keeps the first error so a run of counts reads straight.
type counter struct {
	ctx  context.Context
	repo Repository
	err  error
}

func (c *counter) count(model any, scopes ...Scope) int64 {
	if c.err != nil {
		return 0
	}
	n, err := c.repo.Count(c.ctx, model, scopes...)
	if err != nil {
		c.err = err
	}
	return n
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	now := s.now()
	weekAgo, monthAgo := now.Add(-week), now.Add(-month)
	c := &counter{ctx: ctx, repo: s.repo}

	var out Stats
	out.Services = ServiceStats{
		Total:    c.count(&catalog.Service{}),
		Active:   c.count(&catalog.Service{}, scope.Active),
		Featured: c.count(&catalog.Service{}, scope.Featured),
	}
	out.Projects = ProjectStats{
		Total:      c.count(&project.Project{}),
		Public:     c.count(&project.Project{}, scope.Public),
		Completed:  c.count(&project.Project{}, Where("status", project.StatusCompleted)),
		InProgress: c.count(&project.Project{}, Where("status", project.StatusConstruction)),
	}
	out.Team = TeamStats{
		Total:    c.count(&team.TeamMember{}),
		Active:   c.count(&team.TeamMember{}, scope.Active),
		Featured: c.count(&team.TeamMember{}, scope.Featured),
	}
	out.Content = ContentStats{
		PublishedNews:        c.count(&news.NewsArticle{}, scope.Published),
		ApprovedTestimonials: c.count(&testimonial.Testimonial{}, scope.Approved),
		ActivePartners:       c.count(&partner.Partner{}, scope.Active),
	}
	out.Inquiries = InquiryStats{
		Total:       c.count(&inquiry.ContactInquiry{}),
		ThisWeek:    c.count(&inquiry.ContactInquiry{}, CreatedSince("created_at", weekAgo)),
		ThisMonth:   c.count(&inquiry.ContactInquiry{}, CreatedSince("created_at", monthAgo)),
		Unresponded: c.count(&inquiry.ContactInquiry{}, Where("is_responded", false)),
		HighPriorityPending: c.count(&inquiry.ContactInquiry{},
			Where("priority", inquiry.PriorityHigh), Where("is_responded", false)),
	}
	out.Newsletter = NewsletterStats{
		Active:    c.count(&newsletter.Subscriber{}, scope.Active),
		ThisWeek:  c.count(&newsletter.Subscriber{}, CreatedSince("subscribed_date", weekAgo)),
		ThisMonth: c.count(&newsletter.Subscriber{}, CreatedSince("subscribed_date", monthAgo)),
	}
	if c.err != nil {
		return Stats{}, c.err
	}

	inquiries, err := s.repo.RecentInquiries(ctx, recentLimit)
	if err != nil {
		return Stats{}, err
	}
	subscribers, err := s.repo.RecentSubscribers(ctx, recentLimit)
	if err != nil {
		return Stats{}, err
	}
	articles, err := s.repo.RecentArticles(ctx, recentLimit)
	if err != nil {
		return Stats{}, err
	}
	out.Recent = Recent{
		Inquiries:   inquiry.MapInquiries(inquiries),
		Subscribers: newsletter.MapSubscribers(subscribers),
		News:        news.MapArticles(articles),
	}

	if out.Breakdowns.InquiryTypes, err = s.repo.Breakdown(ctx, &inquiry.ContactInquiry{}, "inquiry_type"); err != nil {
		return Stats{}, err
	}
	if out.Breakdowns.ProjectStatus, err = s.repo.Breakdown(ctx, &project.Project{}, "status"); err != nil {
		return Stats{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Debug("dashboard computed",
		zap.Int64("inquiries", out.Inquiries.Total),
		zap.Int64("subscribers", out.Newsletter.Active),
	)
	return out, nil
}
