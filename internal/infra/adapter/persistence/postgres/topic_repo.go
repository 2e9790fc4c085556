package postgres

import (
	"context"
	"fmt"
	"time"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

type TopicRepo struct {
	db Querier
}

func NewTopicRepo(db Querier) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) List(ctx context.Context) ([]*entity.Topic, error) {
	defer observe("topics.list", time.Now())
	const query = `
SELECT slug, description
FROM topics
ORDER BY slug`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	topics := make([]*entity.Topic, 0, 8)
	for rows.Next() {
		var topic entity.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}
