package postgres

import (
	"context"
	"fmt"
	"time"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

type ArticleRepo struct {
	db Querier
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("articles.get", time.Now())
	const query = `
SELECT article_id, author, title, body, topic, created_at, votes, article_img_url
FROM articles
WHERE article_id = $1`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var article entity.Article
	if err := rows.Scan(&article.ID, &article.Author, &article.Title, &article.Body,
		&article.Topic, &article.CreatedAt, &article.Votes, &article.ArticleImgURL); err != nil {
		return nil, fmt.Errorf("Get: Scan: %w", err)
	}
	return &article, rows.Err()
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	defer observe("articles.exists", time.Now())
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var exists bool
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return false, fmt.Errorf("Exists: Scan: %w", err)
		}
	}
	return exists, rows.Err()
}

// ListWithCommentCounts uses a LEFT JOIN so articles without comments are kept with a count of 0.
func (repo *ArticleRepo) ListWithCommentCounts(ctx context.Context) ([]entity.ArticleSummary, error) {
	defer observe("articles.list_with_comment_counts", time.Now())
	const query = `
SELECT a.article_id, a.author, a.title, a.topic, a.created_at, a.votes, a.article_img_url,
       COUNT(c.comment_id) AS comment_count
FROM articles a
LEFT JOIN comments c ON c.article_id = a.article_id
GROUP BY a.article_id
ORDER BY a.article_id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithCommentCounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]entity.ArticleSummary, 0, 32)
	for rows.Next() {
		var s entity.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Author, &s.Title, &s.Topic,
			&s.CreatedAt, &s.Votes, &s.ArticleImgURL, &s.CommentCount); err != nil {
			return nil, fmt.Errorf("ListWithCommentCounts: Scan: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
