package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"nc-news/internal/domain/entity"
	"nc-news/internal/handler/http/respond"
	artUC "nc-news/internal/usecase/article"
)

// IDParam is the route parameter carrying the article identifier.
const IDParam = "article_id"

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します（comment_count は含みません）
// @Tags         articles
// @Produce      json
// @Param        article_id path int true "記事ID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      400 {object} respond.ErrorBody "Bad Request"
// @Failure      404 {object} respond.ErrorBody "Not Found"
// @Failure      500 {object} respond.ErrorBody "Internal Server Error"
// @Router       /articles/{article_id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, IDParam)
	ctx := r.Context()

	// lookup と存在確認を並行実行し、両方の完了を待ってから優先順位で判定する
	var (
		article           *entity.Article
		getErr, existsErr error
		g                 errgroup.Group
	)
	g.Go(func() error {
		article, getErr = h.Svc.Get(ctx, rawID)
		return nil
	})
	g.Go(func() error {
		existsErr = h.Svc.Exists(ctx, rawID)
		return nil
	})
	_ = g.Wait()

	if err := entity.FirstByPrecedence(getErr, existsErr); err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}
