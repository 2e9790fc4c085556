package article

import (
	"github.com/go-chi/chi/v5"

	artUC "nc-news/internal/usecase/article"
)

// Register registers the article routes on r.
// The comments sub-resource is registered by the comment package.
func Register(r chi.Router, svc *artUC.Service) {
	r.Method("GET", "/articles", ListHandler{Svc: svc})
	r.Method("GET", "/articles/{"+IDParam+"}", GetHandler{Svc: svc})
}
