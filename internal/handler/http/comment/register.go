package comment

import (
	"github.com/go-chi/chi/v5"

	"nc-news/internal/handler/http/article"
	artUC "nc-news/internal/usecase/article"
	commentUC "nc-news/internal/usecase/comment"
)

// Register registers the comments sub-resource of articles on r.
func Register(r chi.Router, articles *artUC.Service, comments *commentUC.Service) {
	r.Method("GET", "/articles/{"+article.IDParam+"}/comments", ListHandler{
		Articles: articles,
		Comments: comments,
	})
}
