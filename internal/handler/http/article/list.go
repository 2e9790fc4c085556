package article

import (
	"net/http"

	"nc-news/internal/handler/http/respond"
	artUC "nc-news/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  全記事をコメント数付きで article_id の降順に返します（body は含みません）
// @Tags         articles
// @Produce      json
// @Success      200 {object} ListResponse "記事一覧"
// @Failure      500 {object} respond.ErrorBody "Internal Server Error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListWithCommentCounts(r.Context())
	if err != nil {
		respond.Failure(w, r, err)
		return
	}

	out := make([]SummaryDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toSummaryDTO(s))
	}
	respond.JSON(w, http.StatusOK, ListResponse{Articles: out})
}
