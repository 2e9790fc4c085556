package repository

import (
	"context"

	"nc-news/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle returns the comments for an article ordered by comment_id DESC.
	// An article with no comments, or no such article, yields an empty slice.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
}
