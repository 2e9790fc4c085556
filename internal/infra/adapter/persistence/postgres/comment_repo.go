package postgres

import (
	"context"
	"fmt"
	"time"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

type CommentRepo struct {
	db Querier
}

func NewCommentRepo(db Querier) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	defer observe("comments.list_by_article", time.Now())
	const query = `
SELECT comment_id, article_id, body, created_at, votes, author
FROM comments
WHERE article_id = $1
ORDER BY comment_id DESC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
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
	return comments, rows.Err()
}
