package site_test

import (
	"context"
	"errors"
	"testing"

	"nupo-consult/internal/catalog"
	catalogMock "nupo-consult/internal/catalog/mock"
	"nupo-consult/internal/company"
	companyMock "nupo-consult/internal/company/mock"
	"nupo-consult/internal/news"
	newsMock "nupo-consult/internal/news/mock"
	"nupo-consult/internal/partner"
	partnerMock "nupo-consult/internal/partner/mock"
	"nupo-consult/internal/project"
	projectMock "nupo-consult/internal/project/mock"
	"nupo-consult/internal/seo"
	seoMock "nupo-consult/internal/seo/mock"
	"nupo-consult/internal/site"
	"nupo-consult/internal/team"
	teamMock "nupo-consult/internal/team/mock"
	"nupo-consult/internal/testimonial"
	testimonialMock "nupo-consult/internal/testimonial/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type mocks struct {
	company      *companyMock.MockService
	seo          *seoMock.MockService
	catalog      *catalogMock.MockCatalog
	projects     *projectMock.MockService
	news         *newsMock.MockService
	team         *teamMock.MockService
	partners     *partnerMock.MockService
	testimonials *testimonialMock.MockService
}

func setupService(t *testing.T) (site.Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		company:      companyMock.NewMockService(ctrl),
		seo:          seoMock.NewMockService(ctrl),
		catalog:      catalogMock.NewMockCatalog(ctrl),
		projects:     projectMock.NewMockService(ctrl),
		news:         newsMock.NewMockService(ctrl),
		team:         teamMock.NewMockService(ctrl),
		partners:     partnerMock.NewMockService(ctrl),
		testimonials: testimonialMock.NewMockService(ctrl),
	}
	svc := site.NewService(site.Deps{
		Company:      m.company,
		SEO:          m.seo,
		Catalog:      m.catalog,
		Projects:     m.projects,
		News:         m.news,
		Team:         m.team,
		Partners:     m.partners,
		Testimonials: m.testimonials,
	}, zap.NewNop())
	return svc, m
}

func companyContext() company.Context {
	return company.Context{Profile: &company.ProfileResponse{Name: "NUPO Consult"}}
}

func TestService_Home(t *testing.T) {
	ctx := context.Background()

	t.Run("composes every block with its limit", func(t *testing.T) {
		svc, m := setupService(t)
		m.catalog.EXPECT().Featured(gomock.Any(), 6).Return([]catalog.ServiceResponse{{Title: "Audit"}}, nil)
		m.projects.EXPECT().Featured(gomock.Any(), 3).Return([]project.ProjectResponse{{Name: "Bridge"}}, nil)
		m.testimonials.EXPECT().Featured(gomock.Any(), 3).Return([]testimonial.TestimonialResponse{{ClientName: "Ada"}}, nil)
		m.news.EXPECT().Latest(gomock.Any(), 3).Return([]news.ArticleResponse{{Title: "Launch"}}, nil)
		m.partners.EXPECT().Active(gomock.Any(), 8).Return([]partner.PartnerResponse{{Name: "Acme"}}, nil)
		m.team.EXPECT().Featured(gomock.Any(), 4).Return([]team.TeamMemberResponse{{Name: "Bob"}}, nil)
		m.company.EXPECT().GetContext(ctx).Return(companyContext(), nil)
		m.seo.EXPECT().ForPage(ctx, seo.PageHome).Return(&seo.SettingsResponse{MetaTitle: "Home"}, nil)

		page, err := svc.Home(ctx)

		require.NoError(t, err)
		assert.Equal(t, "NUPO Consult", page.Company.Profile.Name)
		assert.Equal(t, "Home", page.SEO.MetaTitle)
		assert.Len(t, page.FeaturedServices, 1)
		assert.Len(t, page.FeaturedProjects, 1)
		assert.Len(t, page.Testimonials, 1)
		assert.Len(t, page.LatestNews, 1)
		assert.Len(t, page.Partners, 1)
		assert.Len(t, page.TeamMembers, 1)
	})

	t.Run("a failed block fails the page", func(t *testing.T) {
		svc, m := setupService(t)
		boom := errors.New("db down")
		m.catalog.EXPECT().Featured(gomock.Any(), 6).Return(nil, boom)
		m.projects.EXPECT().Featured(gomock.Any(), 3).Return(nil, nil).AnyTimes()
		m.testimonials.EXPECT().Featured(gomock.Any(), 3).Return(nil, nil).AnyTimes()
		m.news.EXPECT().Latest(gomock.Any(), 3).Return(nil, nil).AnyTimes()
		m.partners.EXPECT().Active(gomock.Any(), 8).Return(nil, nil).AnyTimes()
		m.team.EXPECT().Featured(gomock.Any(), 4).Return(nil, nil).AnyTimes()

		_, err := svc.Home(ctx)

		assert.ErrorIs(t, err, boom)
	})
}

func TestService_PageContextDegrades(t *testing.T) {
	ctx := context.Background()
	svc, m := setupService(t)
	m.partners.EXPECT().Active(ctx, 0).Return([]partner.PartnerResponse{{Name: "Acme"}}, nil)
	m.company.EXPECT().GetContext(ctx).Return(company.Context{}, errors.New("redis and db down"))
	m.seo.EXPECT().ForPage(ctx, seo.PagePartners).Return(nil, errors.New("db down"))

	page, err := svc.Partners(ctx)

	require.NoError(t, err)
	assert.Nil(t, page.Company)
	assert.Nil(t, page.SEO)
	assert.Len(t, page.Partners, 1)
}

func TestService_About(t *testing.T) {
	ctx := context.Background()
	svc, m := setupService(t)
	m.team.EXPECT().Active(ctx, 6).Return([]team.TeamMemberResponse{{Name: "Bob"}}, nil)
	m.partners.EXPECT().Active(ctx, 0).Return(nil, nil)
	m.company.EXPECT().GetContext(ctx).Return(companyContext(), nil)
	m.seo.EXPECT().ForPage(ctx, seo.PageAbout).Return(nil, nil)

	page, err := svc.About(ctx)

	require.NoError(t, err)
	assert.Len(t, page.TeamMembers, 1)
	assert.Nil(t, page.SEO)
}

func TestService_Contact(t *testing.T) {
	ctx := context.Background()
	svc, m := setupService(t)
	m.catalog.EXPECT().Listing(ctx, "").Return(catalog.Listing{Services: []catalog.ServiceResponse{{Title: "Audit"}}}, nil)
	m.company.EXPECT().GetContext(ctx).Return(companyContext(), nil)
	m.seo.EXPECT().ForPage(ctx, seo.PageContact).Return(nil, nil)

	page, err := svc.Contact(ctx)

	require.NoError(t, err)
	assert.Len(t, page.Services, 1)
	assert.Len(t, page.InquiryTypes, 6)
}

func TestService_DetailNotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := setupService(t)
	boom := errors.New("not found")
	m.news.EXPECT().DetailBySlug(ctx, "missing").Return(news.Detail{}, boom)

	_, err := svc.NewsDetail(ctx, "missing")

	assert.ErrorIs(t, err, boom)
}
