package article

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"nc-news/internal/domain/entity"
	"nc-news/internal/observability"
	"nc-news/internal/repository"
)

// Service provides article read use cases.
// Every method that takes a raw identifier validates it before touching the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Get returns the article whose ID is rawID.
// A malformed rawID yields ErrInvalidArticleID, an absent article ErrArticleNotFound.
// The result never carries a comment count.
func (s *Service) Get(ctx context.Context, rawID string) (article *entity.Article, err error) {
	ctx, finish := observability.StartResolver(ctx, "article.get", attribute.String("article.id", rawID))
	defer func() { finish(err) }()

	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}
	article, err = s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("get article %d: %w", id, ErrArticleNotFound)
	}
	return article, nil
}

// Exists succeeds when an article with ID rawID is present.
// It fails the same way Get does for malformed or absent IDs.
func (s *Service) Exists(ctx context.Context, rawID string) (err error) {
	ctx, finish := observability.StartResolver(ctx, "article.exists", attribute.String("article.id", rawID))
	defer func() { finish(err) }()

	id, err := parseArticleID(rawID)
	if err != nil {
		return err
	}
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check article: %w", err)
	}
	if !ok {
		return fmt.Errorf("check article %d: %w", id, ErrArticleNotFound)
	}
	return nil
}

// ListWithCommentCounts returns every article with its comment count, highest ID first.
// Counts are computed by the store on each call.
func (s *Service) ListWithCommentCounts(ctx context.Context) (articles []entity.ArticleSummary, err error) {
	ctx, finish := observability.StartResolver(ctx, "article.list")
	defer func() { finish(err) }()

	articles, err = s.Repo.ListWithCommentCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles with comment counts: %w", err)
	}
	return articles, nil
}

func parseArticleID(raw string) (int64, error) {
	id, err := entity.ParseIdentifier(raw)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidArticleID, raw)
	}
	return id, nil
}
