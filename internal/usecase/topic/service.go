// Package topic provides the topic listing use case.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"nc-news/internal/domain/entity"
	"nc-news/internal/observability"
	"nc-news/internal/observability/metrics"
	"nc-news/internal/repository"
)

const listKey = "topics:all"

// Service lists topics, optionally through an in-process cache.
// Topics are never written by this application, so a cached listing only goes
// stale when the store is reseeded; the TTL bounds that window.
// The cache holds values; every caller receives its own copies.
type Service struct {
	repo  repository.TopicRepository
	cache *cache.Cache
}

// NewService creates a topic service. A ttl of zero or less disables caching.
func NewService(repo repository.TopicRepository, ttl time.Duration) *Service {
	s := &Service{repo: repo}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

// List returns every topic. Only infrastructure failures are possible.
func (s *Service) List(ctx context.Context) (topics []*entity.Topic, err error) {
	ctx, finish := observability.StartResolver(ctx, "topic.list")
	defer func() { finish(err) }()

	if s.cache != nil {
		if v, ok := s.cache.Get(listKey); ok {
			metrics.RecordTopicCache(true)
			return toPointers(v.([]entity.Topic)), nil
		}
		metrics.RecordTopicCache(false)
	}

	topics, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if s.cache != nil {
		s.cache.SetDefault(listKey, toValues(topics))
	}
	return topics, nil
}

func toValues(in []*entity.Topic) []entity.Topic {
	out := make([]entity.Topic, 0, len(in))
	for _, t := range in {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

func toPointers(in []entity.Topic) []*entity.Topic {
	out := make([]*entity.Topic, len(in))
	for i := range in {
		t := in[i]
		out[i] = &t
	}
	return out
}
