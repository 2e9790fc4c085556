// Package comment provides the HTTP handler for an article's comments.
package comment

import (
	"time"

	"nc-news/internal/domain/entity"
)

// DTO represents the JSON structure of a comment.
type DTO struct {
	CommentID int64     `json:"comment_id" example:"18"`
	Votes     int64     `json:"votes" example:"16"`
	CreatedAt time.Time `json:"created_at" example:"2020-07-21T00:20:00Z"`
	Author    string    `json:"author" example:"butter_bridge"`
	Body      string    `json:"body" example:"This morning, I showered for nine minutes."`
	ArticleID int64     `json:"article_id" example:"1"`
}

// ListResponse wraps an article's comments.
type ListResponse struct {
	Comments []DTO `json:"comments"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		CommentID: c.ID,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
		Author:    c.Author,
		Body:      c.Body,
		ArticleID: c.ArticleID,
	}
}
