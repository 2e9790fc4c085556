package entity

import "time"

// Comment is a reader comment attached to an article.
type Comment struct {
	ID        int64
	ArticleID int64
	Body      string
	CreatedAt time.Time
	Votes     int64
	Author    string
}
