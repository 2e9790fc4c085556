// Package endpoints serves the static description of the API under GET /api.
package endpoints

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nc-news/internal/handler/http/respond"
)

//go:embed endpoints.json
var document []byte

// Document returns a copy of the embedded endpoint description.
func Document() json.RawMessage {
	out := make(json.RawMessage, len(document))
	copy(out, document)
	return out
}

// Response is the body of GET /api.
type Response struct {
	EndPoints json.RawMessage `json:"endPoints" swaggertype:"object"`
}

type Handler struct{}

// ServeHTTP エンドポイント一覧
// @Summary      エンドポイント一覧
// @Description  利用可能な API エンドポイントの説明を返します
// @Tags         discovery
// @Produce      json
// @Success      200 {object} Response "エンドポイント一覧"
// @Router       / [get]
func (Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, Response{EndPoints: document})
}

// Register registers GET / on r; mount it under /api.
func Register(r chi.Router) {
	r.Method("GET", "/", Handler{})
}
