// Package article provides HTTP handlers for article-related endpoints.
// It serves the article listing with comment counts and the single-article lookup.
package article

import (
	"time"

	"nc-news/internal/domain/entity"
)

// DTO represents the JSON structure of a single article.
type DTO struct {
	ArticleID     int64     `json:"article_id" example:"1"`
	Author        string    `json:"author" example:"butter_bridge"`
	Title         string    `json:"title" example:"Living in the shadow of a great man"`
	Body          string    `json:"body" example:"I find this existence challenging"`
	Topic         string    `json:"topic" example:"mitch"`
	CreatedAt     time.Time `json:"created_at" example:"2020-07-09T20:11:00Z"`
	Votes         int64     `json:"votes" example:"100"`
	ArticleImgURL string    `json:"article_img_url" example:"https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"`
}

// SummaryDTO is the listing form: no body, plus the derived comment count.
type SummaryDTO struct {
	ArticleID     int64     `json:"article_id" example:"1"`
	Author        string    `json:"author" example:"butter_bridge"`
	Title         string    `json:"title" example:"Living in the shadow of a great man"`
	Topic         string    `json:"topic" example:"mitch"`
	CreatedAt     time.Time `json:"created_at" example:"2020-07-09T20:11:00Z"`
	Votes         int64     `json:"votes" example:"100"`
	ArticleImgURL string    `json:"article_img_url" example:"https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"`
	CommentCount  int64     `json:"comment_count" example:"11"`
}

// ListResponse wraps the article listing.
type ListResponse struct {
	Articles []SummaryDTO `json:"articles"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ArticleID:     a.ID,
		Author:        a.Author,
		Title:         a.Title,
		Body:          a.Body,
		Topic:         a.Topic,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}
}

func toSummaryDTO(s entity.ArticleSummary) SummaryDTO {
	return SummaryDTO{
		ArticleID:     s.ID,
		Author:        s.Author,
		Title:         s.Title,
		Topic:         s.Topic,
		CreatedAt:     s.CreatedAt,
		Votes:         s.Votes,
		ArticleImgURL: s.ArticleImgURL,
		CommentCount:  s.CommentCount,
	}
}
