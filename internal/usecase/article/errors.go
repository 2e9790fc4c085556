// Package article provides the read use cases for articles: single lookup, the
// existence guard used before listing comments, and the listing with comment counts.
package article

import (
	"fmt"

	"nc-news/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no article has the requested, well-formed ID.
	// It matches entity.ErrNotFound under errors.Is.
	ErrArticleNotFound = fmt.Errorf("article %w", entity.ErrNotFound)

	// ErrInvalidArticleID indicates that the article ID is not an integer.
	// It matches entity.ErrInvalidIdentifier under errors.Is.
	ErrInvalidArticleID = fmt.Errorf("article id: %w", entity.ErrInvalidIdentifier)
)
