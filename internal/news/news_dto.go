package news

import (
	"time"

	"nupo-consult/internal/shared/response"
)

type ArticleRequest struct {
	Title           string     `json:"title" binding:"required,max=200"`
	Slug            string     `json:"slug" binding:"max=200"`
	ArticleType     string     `json:"article_type"`
	AuthorID        *string    `json:"author_id" binding:"omitempty,uuid"`
	Excerpt         string     `json:"excerpt" binding:"required,max=300"`
	Content         string     `json:"content" binding:"required"`
	FeaturedImage   string     `json:"featured_image" binding:"max=255"`
	IconClass       string     `json:"icon_class" binding:"max=50"`
	IsFeatured      bool       `json:"is_featured"`
	IsPublished     bool       `json:"is_published"`
	PublishedDate   *time.Time `json:"published_date"`
	MetaTitle       string     `json:"meta_title" binding:"max=60"`
	MetaDescription string     `json:"meta_description" binding:"max=160"`
}

type ListFilter struct {
	ArticleType string
	IsPublished *bool
	IsFeatured  *bool
	Search      string
	Page        int
	PageSize    int
}

type AuthorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ArticleResponse struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	ArticleType     string         `json:"article_type"`
	Author          *AuthorSummary `json:"author"`
	Excerpt         string         `json:"excerpt"`
	Content         string         `json:"content"`
	FeaturedImage   string         `json:"featured_image"`
	IconClass       string         `json:"icon_class"`
	IsFeatured      bool           `json:"is_featured"`
	IsPublished     bool           `json:"is_published"`
	PublishedDate   *time.Time     `json:"published_date"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	ViewsCount      int64          `json:"views_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type Listing struct {
	ArticleType string                  `json:"article_type"`
	Articles    []ArticleResponse       `json:"articles"`
	Featured    []ArticleResponse       `json:"featured"`
	Meta        response.PaginationMeta `json:"meta"`
}

type Detail struct {
	Article ArticleResponse   `json:"article"`
	Related []ArticleResponse `json:"related"`
}

func MapArticle(a NewsArticle) ArticleResponse {
	resp := ArticleResponse{
		ID:              a.ID.String(),
		Title:           a.Title,
		Slug:            a.Slug,
		ArticleType:     string(a.ArticleType),
		Excerpt:         a.Excerpt,
		Content:         a.Content,
		FeaturedImage:   a.FeaturedImage,
		IconClass:       a.IconClass,
		IsFeatured:      a.IsFeatured,
		IsPublished:     a.IsPublished,
		PublishedDate:   a.PublishedDate,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		ViewsCount:      a.ViewsCount,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Author != nil {
		resp.Author = &AuthorSummary{ID: a.Author.ID.String(), Name: a.Author.Name}
	}
	return resp
}

func MapArticles(in []NewsArticle) []ArticleResponse {
	out := make([]ArticleResponse, len(in))
	for i, a := range in {
		out[i] = MapArticle(a)
	}
	return out
}
