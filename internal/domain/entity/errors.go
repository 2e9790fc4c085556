package entity

import "errors"

// Sentinel errors forming the failure taxonomy.
// Resolvers wrap these with %w; callers classify with errors.Is or KindOf.
var (
	// ErrInvalidIdentifier indicates a malformed identifier, detected before any storage access.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotFound indicates a well-formed identifier with no matching entity.
	ErrNotFound = errors.New("not found")

	// ErrNoCommentsForArticle indicates the article exists but has no comments.
	ErrNoCommentsForArticle = errors.New("no comments for article")

	// ErrRouteNotFound indicates that no operation matches the inbound request.
	ErrRouteNotFound = errors.New("route not found")
)

// Kind classifies an error into the taxonomy.
// Higher values take precedence when several concurrent checks fail at once.
type Kind int

const (
	KindNone Kind = iota
	KindInfrastructure
	KindRouteNotFound
	KindNoCommentsForArticle
	KindNotFound
	KindInvalidIdentifier
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindInfrastructure:
		return "infrastructure"
	case KindRouteNotFound:
		return "route_not_found"
	case KindNoCommentsForArticle:
		return "no_comments_for_article"
	case KindNotFound:
		return "not_found"
	case KindInvalidIdentifier:
		return "invalid_identifier"
	default:
		return "unknown"
	}
}

// KindOf reports which taxonomy member err belongs to.
// Any non-nil error outside the taxonomy is infrastructure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidIdentifier):
		return KindInvalidIdentifier
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrNoCommentsForArticle):
		return KindNoCommentsForArticle
	case errors.Is(err, ErrRouteNotFound):
		return KindRouteNotFound
	default:
		return KindInfrastructure
	}
}

// FirstByPrecedence returns the error with the highest Kind among errs, or nil if all are nil.
// Ties keep the earliest argument, so the result never depends on which goroutine finished first.
func FirstByPrecedence(errs ...error) error {
	var (
		winner error
		best   = KindNone
	)
	for _, err := range errs {
		if k := KindOf(err); k > best {
			winner, best = err, k
		}
	}
	return winner
}
