// Package entity defines the core domain entities and validation logic for the application.
// It contains the read models served by the API (Topic, Article, Comment), the shared
// identifier validation rule, and the failure taxonomy every resolver reports through.
package entity

import "time"

// Article represents a single news article.
// Topic references Topic.Slug; the reference is enforced by the store, not here.
type Article struct {
	ID            int64
	Author        string
	Title         string
	Body          string
	Topic         string
	CreatedAt     time.Time
	Votes         int64
	ArticleImgURL string
}

// ArticleSummary is the aggregate listing form of an article.
// It omits the body and carries CommentCount, which is derived from the comments
// table at read time and never stored.
type ArticleSummary struct {
	ID            int64
	Author        string
	Title         string
	Topic         string
	CreatedAt     time.Time
	Votes         int64
	ArticleImgURL string
	CommentCount  int64
}
