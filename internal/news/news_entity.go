package news

import (
	"time"

	"nupo-consult/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleType string

const (
	TypeNews           ArticleType = "news"
	TypeAward          ArticleType = "award"
	TypeProject        ArticleType = "project"
	TypeIndustry       ArticleType = "industry"
	TypeSustainability ArticleType = "sustainability"
	TypeTraining       ArticleType = "training"
)

func (t ArticleType) Valid() bool {
	switch t {
	case TypeNews, TypeAward, TypeProject, TypeIndustry, TypeSustainability, TypeTraining:
		return true
	}
	return false
}

type NewsArticle struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title           string      `gorm:"size:200;not null"`
	Slug            string      `gorm:"size:200;not null;uniqueIndex:uq_news_articles_slug"`
	ArticleType     ArticleType `gorm:"size:20;not null;default:news;index"`
	AuthorID        *uuid.UUID  `gorm:"type:uuid;index"`
	Author          *user.User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Excerpt         string      `gorm:"size:300;not null"`
	Content         string      `gorm:"type:text;not null"`
	FeaturedImage   string      `gorm:"size:255"`
	IconClass       string      `gorm:"size:50"`
	IsFeatured      bool        `gorm:"not null;default:false"`
	IsPublished     bool        `gorm:"not null;default:false;index"`
	PublishedDate   *time.Time  `gorm:"index"`
	MetaTitle       string      `gorm:"size:60"`
	MetaDescription string      `gorm:"size:160"`
	ViewsCount      int64       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (NewsArticle) TableName() string {
	return "news_articles"
}

func (a *NewsArticle) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
