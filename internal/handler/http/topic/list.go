// Package topic provides the HTTP handler for the topic listing.
package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nc-news/internal/handler/http/respond"
	topicUC "nc-news/internal/usecase/topic"
)

// DTO represents the JSON structure of a topic.
type DTO struct {
	Slug        string `json:"slug" example:"mitch"`
	Description string `json:"description" example:"The man, the Mitch, the legend"`
}

// ListResponse wraps the topic listing.
type ListResponse struct {
	Topics []DTO `json:"topics"`
}

type ListHandler struct{ Svc *topicUC.Service }

// ServeHTTP トピック一覧取得
// @Summary      トピック一覧取得
// @Tags         topics
// @Produce      json
// @Success      200 {object} ListResponse "トピック一覧"
// @Failure      500 {object} respond.ErrorBody "Internal Server Error"
// @Router       /topics [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	out := make([]DTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, DTO{Slug: t.Slug, Description: t.Description})
	}
	respond.JSON(w, http.StatusOK, ListResponse{Topics: out})
}

// Register registers the topic routes on r.
func Register(r chi.Router, svc *topicUC.Service) {
	r.Method("GET", "/topics", ListHandler{Svc: svc})
}
