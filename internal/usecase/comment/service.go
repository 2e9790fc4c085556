// Package comment provides the comment listing use case.
package comment

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"nc-news/internal/domain/entity"
	"nc-news/internal/observability"
	"nc-news/internal/repository"
)

// Service lists the comments attached to an article.
type Service struct {
	Repo repository.CommentRepository
}

// ListForArticle returns the comments of the article with ID rawID, highest comment ID first.
//
// It does not check that the article exists: an unknown article and an article
// without comments both yield an empty, non-nil slice. Callers that need to tell
// them apart run the article existence guard alongside.
func (s *Service) ListForArticle(ctx context.Context, rawID string) (comments []*entity.Comment, err error) {
	ctx, finish := observability.StartResolver(ctx, "comment.list", attribute.String("article.id", rawID))
	defer func() { finish(err) }()

	id, err := entity.ParseIdentifier(rawID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments, err = s.Repo.ListByArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", id, err)
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}
