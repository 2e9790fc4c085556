// Package repository declares the storage gateway contracts used by the resolvers.
// Implementations execute fixed parameterized queries and never treat an empty result as an error.
package repository

import (
	"context"

	"nc-news/internal/domain/entity"
)

type ArticleRepository interface {
	// Get returns the article with the given id, or (nil, nil) when no row matches.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Exists reports whether at least one article row has the given id.
	Exists(ctx context.Context, id int64) (bool, error)
	// ListWithCommentCounts returns every article joined with its comment count
	// (zero for articles without comments), ordered by article_id DESC.
	ListWithCommentCounts(ctx context.Context) ([]entity.ArticleSummary, error)
}
