package dashboard_test

import (
	"context"
	"testing"
	"time"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/dashboard"
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/news"
	"nupo-consult/internal/newsletter"
	"nupo-consult/internal/partner"
	"nupo-consult/internal/project"
	"nupo-consult/internal/shared/testdb"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"
	"nupo-consult/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDashboard(t *testing.T) (*gorm.DB, dashboard.Service) {
	t.Helper()
	db := testdb.New(t,
		&user.User{},
		&catalog.ServiceCategory{},
		&catalog.Service{},
		&team.TeamMember{},
		&project.Project{},
		&partner.Partner{},
		&testimonial.Testimonial{},
		&news.NewsArticle{},
		&inquiry.ContactInquiry{},
		&newsletter.Subscriber{},
	)
	return db, dashboard.NewService(dashboard.NewRepository(db), zap.NewNop())
}

func seedInquiry(t *testing.T, db *gorm.DB, typ inquiry.InquiryType, priority inquiry.Priority, age time.Duration) {
	t.Helper()
	row := &inquiry.ContactInquiry{
		Name:        "Visitor",
		Email:       "visitor@example.com",
		InquiryType: typ,
		Priority:    priority,
		Subject:     "Hello",
		Message:     "Body",
		CreatedAt:   time.Now().UTC().Add(-age),
	}
	require.NoError(t, db.Create(row).Error)
}

func TestService_Stats(t *testing.T) {
	db, svc := setupDashboard(t)
	day := 24 * time.Hour

	seedInquiry(t, db, inquiry.TypeQuote, inquiry.PriorityHigh, time.Hour)
	seedInquiry(t, db, inquiry.TypeQuote, inquiry.PriorityMedium, 10*day)
	seedInquiry(t, db, inquiry.TypeGeneral, inquiry.PriorityHigh, 40*day)
	require.NoError(t, db.Model(&inquiry.ContactInquiry{}).
		Where("created_at < ?", time.Now().UTC().Add(-30*day)).
		Update("is_responded", true).Error)

	for i, status := range []project.Status{project.StatusCompleted, project.StatusCompleted, project.StatusConstruction} {
		p := &project.Project{
			Name:        "Project",
			Slug:        "project-" + string(rune('a'+i)),
			Client:      "Client",
			ProjectType: project.TypeCommercial,
			Status:      status,
			Description: "d",
			Location:    "Accra",
			IsPublic:    true,
		}
		require.NoError(t, db.Create(p).Error)
	}
	require.NoError(t, db.Model(&project.Project{}).Where("status = ?", project.StatusConstruction).
		Update("is_public", false).Error)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		require.NoError(t, db.Create(&newsletter.Subscriber{Email: email}).Error)
	}
	require.NoError(t, db.Model(&newsletter.Subscriber{}).Where("email = ?", "b@example.com").
		Update("is_active", false).Error)

	published := time.Now().UTC()
	require.NoError(t, db.Create(&news.NewsArticle{
		Title: "Launch", Slug: "launch", Excerpt: "e", Content: "c",
		IsPublished: true, PublishedDate: &published,
	}).Error)
	require.NoError(t, db.Create(&news.NewsArticle{Title: "Draft", Slug: "draft", Excerpt: "e", Content: "c"}).Error)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dashboard.InquiryStats{
		Total:               3,
		ThisWeek:            1,
		ThisMonth:           2,
		Unresponded:         2,
		HighPriorityPending: 1,
	}, stats.Inquiries)
	assert.Equal(t, dashboard.ProjectStats{Total: 3, Public: 2, Completed: 2, InProgress: 1}, stats.Projects)
	assert.Equal(t, dashboard.NewsletterStats{Active: 1, ThisWeek: 2, ThisMonth: 2}, stats.Newsletter)
	assert.Equal(t, int64(1), stats.Content.PublishedNews)
	assert.Zero(t, stats.Services.Total)

	assert.Len(t, stats.Recent.Inquiries, 3)
	assert.Len(t, stats.Recent.Subscribers, 1)
	require.Len(t, stats.Recent.News, 1)
	assert.Equal(t, "Launch", stats.Recent.News[0].Title)

	assert.Equal(t, []dashboard.Bucket{{Value: "quote", Count: 2}, {Value: "general", Count: 1}}, stats.Breakdowns.InquiryTypes)
	assert.Equal(t, []dashboard.Bucket{{Value: "completed", Count: 2}, {Value: "construction", Count: 1}}, stats.Breakdowns.ProjectStatus)
}

func TestService_Stats_StorageError(t *testing.T) {
	db, svc := setupDashboard(t)
	require.NoError(t, db.Migrator().DropTable(&project.Project{}))

	_, err := svc.Stats(context.Background())

	assert.Error(t, err)
}
