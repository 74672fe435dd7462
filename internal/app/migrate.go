package app

import (
	"nupo-consult/internal/catalog"
	"nupo-consult/internal/company"
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/messaging/kafka"
	"nupo-consult/internal/news"
	"nupo-consult/internal/newsletter"
	"nupo-consult/internal/partner"
	"nupo-consult/internal/project"
	"nupo-consult/internal/rbac"
	"nupo-consult/internal/seo"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"
	"nupo-consult/internal/user"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&rbac.RolePermission{},
		&company.CompanyProfile{},
		&company.CompanyStats{},
		&catalog.ServiceCategory{},
		&catalog.Service{},
		&team.TeamMember{},
		&partner.Partner{},
		&project.Project{},
		&news.NewsArticle{},
		&testimonial.Testimonial{},
		&inquiry.ContactInquiry{},
		&newsletter.Subscriber{},
		&seo.Settings{},
		&kafka.OutboxEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
