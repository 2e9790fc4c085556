package comment

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"nc-news/internal/domain/entity"
	"nc-news/internal/handler/http/article"
	"nc-news/internal/handler/http/respond"
	artUC "nc-news/internal/usecase/article"
	commentUC "nc-news/internal/usecase/comment"
)

type ListHandler struct {
	Articles *artUC.Service
	Comments *commentUC.Service
}

// ServeHTTP 記事のコメント一覧取得
// @Summary      記事のコメント一覧取得
// @Description  指定された記事のコメントを comment_id の降順に返します
// @Tags         comments
// @Produce      json
// @Param        article_id path int true "記事ID"
// @Success      200 {object} ListResponse "コメント一覧"
// @Failure      400 {object} respond.ErrorBody "Bad Request"
// @Failure      404 {object} respond.ErrorBody "Not Found / No Comments For This Article"
// @Failure      500 {object} respond.ErrorBody "Internal Server Error"
// @Router       /articles/{article_id}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, article.IDParam)
	ctx := r.Context()

	// 存在確認とコメント取得を並行実行する
	var (
		comments           []*entity.Comment
		existsErr, listErr error
		g                  errgroup.Group
	)
	g.Go(func() error {
		existsErr = h.Articles.Exists(ctx, rawID)
		return nil
	})
	g.Go(func() error {
		comments, listErr = h.Comments.ListForArticle(ctx, rawID)
		return nil
	})
	_ = g.Wait()

	// 不正ID > 存在確認の失敗 > コメント取得の失敗 > コメント 0 件
	if err := entity.FirstByPrecedence(existsErr, listErr); err != nil {
		respond.Failure(w, r, err)
		return
	}
	if len(comments) == 0 {
		respond.Failure(w, r, fmt.Errorf("article %s: %w", rawID, entity.ErrNoCommentsForArticle))
		return
	}

	out := make([]DTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, ListResponse{Comments: out})
}
