package site

import (
	"context"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/company"
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/news"
	"nupo-consult/internal/partner"
	"nupo-consult/internal/project"
	"nupo-consult/internal/seo"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	homeServices     = 6
	homeProjects     = 3
	homeTestimonials = 3
	homeNews         = 3
	homePartners     = 8
	homeTeam         = 4
	aboutTeam        = 6
)

//go:generate mockgen -source=site_service.go -destination=mock/site_service_mock.go -package=mock
type Service interface {
	Home(ctx context.Context) (HomePage, error)
	Services(ctx context.Context, search string) (ServicesPage, error)
	ServiceDetail(ctx context.Context, slug string) (ServiceDetailPage, error)
	Projects(ctx context.Context, projectType string, status string, page int) (ProjectsPage, error)
	ProjectDetail(ctx context.Context, slug string) (ProjectDetailPage, error)
	News(ctx context.Context, articleType string, page int) (NewsPage, error)
	NewsDetail(ctx context.Context, slug string) (NewsDetailPage, error)
	Team(ctx context.Context, limit int) (TeamPage, error)
	About(ctx context.Context) (AboutPage, error)
	Partners(ctx context.Context) (PartnersPage, error)
	Contact(ctx context.Context) (ContactPage, error)
}

// Deps are the read services composed into the public pages.
type Deps struct {
	Company      company.Service
	SEO          seo.Service
	Catalog      catalog.Catalog
	Projects     project.Service
	News         news.Service
	Team         team.Service
	Partners     partner.Service
	Testimonials testimonial.Service
}

type service struct {
	deps   Deps
	logger *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("site.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("site.service")
	}
	return &service{deps: deps, logger: l}
}

// page loads the shared context. Neither block ever fails the page.
func (s *service) page(ctx context.Context, name seo.PageName) Page {
	l := contextutil.GetLogger(ctx, s.logger)
	var p Page

	companyCtx, err := s.deps.Company.GetContext(ctx)
	if err != nil {
		l.Warn("company context unavailable", zap.Error(err))
	} else {
		p.Company = &companyCtx
	}

	if name != "" {
		settings, err := s.deps.SEO.ForPage(ctx, name)
		if err != nil {
			l.Warn("seo settings unavailable", zap.String("page", string(name)), zap.Error(err))
		} else {
			p.SEO = settings
		}
	}
	return p
}

func (s *service) Home(ctx context.Context) (HomePage, error) {
	var out HomePage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.FeaturedServices, err = s.deps.Catalog.Featured(gctx, homeServices)
		return err
	})
	g.Go(func() (err error) {
		out.FeaturedProjects, err = s.deps.Projects.Featured(gctx, homeProjects)
		return err
	})
	g.Go(func() (err error) {
		out.Testimonials, err = s.deps.Testimonials.Featured(gctx, homeTestimonials)
		return err
	})
	g.Go(func() (err error) {
		out.LatestNews, err = s.deps.News.Latest(gctx, homeNews)
		return err
	})
	g.Go(func() (err error) {
		out.Partners, err = s.deps.Partners.Active(gctx, homePartners)
		return err
	})
	g.Go(func() (err error) {
		out.TeamMembers, err = s.deps.Team.Featured(gctx, homeTeam)
		return err
	})
	if err := g.Wait(); err != nil {
		return HomePage{}, err
	}

	out.Page = s.page(ctx, seo.PageHome)
	return out, nil
}

func (s *service) Services(ctx context.Context, search string) (ServicesPage, error) {
	listing, err := s.deps.Catalog.Listing(ctx, search)
	if err != nil {
		return ServicesPage{}, err
	}
	return ServicesPage{Page: s.page(ctx, seo.PageServices), Listing: listing}, nil
}

func (s *service) ServiceDetail(ctx context.Context, slug string) (ServiceDetailPage, error) {
	detail, err := s.deps.Catalog.DetailBySlug(ctx, slug)
	if err != nil {
		return ServiceDetailPage{}, err
	}
	return ServiceDetailPage{Page: s.page(ctx, seo.PageServices), Detail: detail}, nil
}

func (s *service) Projects(ctx context.Context, projectType string, status string, page int) (ProjectsPage, error) {
	listing, err := s.deps.Projects.Listing(ctx, projectType, status, page)
	if err != nil {
		return ProjectsPage{}, err
	}
	return ProjectsPage{Page: s.page(ctx, seo.PageProjects), Listing: listing}, nil
}

func (s *service) ProjectDetail(ctx context.Context, slug string) (ProjectDetailPage, error) {
	detail, err := s.deps.Projects.DetailBySlug(ctx, slug)
	if err != nil {
		return ProjectDetailPage{}, err
	}
	return ProjectDetailPage{Page: s.page(ctx, seo.PageProjects), Detail: detail}, nil
}

func (s *service) News(ctx context.Context, articleType string, page int) (NewsPage, error) {
	listing, err := s.deps.News.Listing(ctx, articleType, page)
	if err != nil {
		return NewsPage{}, err
	}
	return NewsPage{Page: s.page(ctx, seo.PageNews), Listing: listing}, nil
}

func (s *service) NewsDetail(ctx context.Context, slug string) (NewsDetailPage, error) {
	detail, err := s.deps.News.DetailBySlug(ctx, slug)
	if err != nil {
		return NewsDetailPage{}, err
	}
	return NewsDetailPage{Page: s.page(ctx, seo.PageNews), Detail: detail}, nil
}

func (s *service) Team(ctx context.Context, limit int) (TeamPage, error) {
	members, err := s.deps.Team.Active(ctx, limit)
	if err != nil {
		return TeamPage{}, err
	}
	return TeamPage{Page: s.page(ctx, seo.PageTeam), TeamMembers: members}, nil
}

func (s *service) About(ctx context.Context) (AboutPage, error) {
	members, err := s.deps.Team.Active(ctx, aboutTeam)
	if err != nil {
		return AboutPage{}, err
	}
	partners, err := s.deps.Partners.Active(ctx, 0)
	if err != nil {
		return AboutPage{}, err
	}
	return AboutPage{Page: s.page(ctx, seo.PageAbout), TeamMembers: members, Partners: partners}, nil
}

func (s *service) Partners(ctx context.Context) (PartnersPage, error) {
	partners, err := s.deps.Partners.Active(ctx, 0)
	if err != nil {
		return PartnersPage{}, err
	}
	return PartnersPage{Page: s.page(ctx, seo.PagePartners), Partners: partners}, nil
}

func (s *service) Contact(ctx context.Context) (ContactPage, error) {
	listing, err := s.deps.Catalog.Listing(ctx, "")
	if err != nil {
		return ContactPage{}, err
	}
	return ContactPage{
		Page:         s.page(ctx, seo.PageContact),
		Services:     listing.Services,
		InquiryTypes: inquiry.TypeOptions(),
	}, nil
}
