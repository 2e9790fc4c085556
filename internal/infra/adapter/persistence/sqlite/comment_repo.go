package sqlite

import (
	"context"
	"fmt"
	"time"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

// CommentRepo implements the CommentRepository interface using SQLite.
type CommentRepo struct{ db Querier }

// NewCommentRepo creates a new SQLite-backed comment repository.
func NewCommentRepo(db Querier) repository.CommentRepository {
	return &CommentRepo{db: db}
}

// ListByArticle retrieves an article's comments, newest ID first.
func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	defer observe("comments.list_by_article", time.Now())
	const query = `
SELECT comment_id, article_id, body, created_at, votes, author
FROM comments
WHERE article_id = ?
ORDER BY comment_id DESC
`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Body, &c.CreatedAt, &c.Votes, &c.Author); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByArticle: rows.Err: %w", err)
	}
	return comments, nil
}
