package article_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/domain/entity"
	artUC "nc-news/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ ArticleRepository
type stubRepo struct {
	data    map[int64]*entity.Article
	summary []entity.ArticleSummary
	err     error // 強制的にエラーを返したいとき用
	calls   atomic.Int32
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.data[id], nil
}

func (s *stubRepo) Exists(_ context.Context, id int64) (bool, error) {
	s.calls.Add(1)
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.data[id]
	return ok, nil
}

func (s *stubRepo) ListWithCommentCounts(_ context.Context) ([]entity.ArticleSummary, error) {
	s.calls.Add(1)
	return s.summary, s.err
}

/* ───────── テストケース ───────── */

func TestService_Get(t *testing.T) {
	created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
	article1 := &entity.Article{
		ID: 1, Author: "butter_bridge", Title: "Living in the shadow of a great man",
		Body: "I find this existence challenging", Topic: "mitch",
		CreatedAt: created, Votes: 100, ArticleImgURL: "https://example.com/1.jpg",
	}

	tests := []struct {
		name     string
		raw      string
		want     *entity.Article
		notFound bool
	}{
		{name: "found", raw: "1", want: article1},
		{name: "absent", raw: "32", notFound: true},
		{name: "zero is well-formed", raw: "0", notFound: true},
		{name: "negative is well-formed", raw: "-1", notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			repo.data[1] = article1
			svc := artUC.Service{Repo: repo}

			got, err := svc.Get(context.Background(), tt.raw)

			if tt.notFound {
				require.ErrorIs(t, err, entity.ErrNotFound)
				assert.ErrorIs(t, err, artUC.ErrArticleNotFound)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_Get_RepositoryFailure(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("db down")
	svc := artUC.Service{Repo: repo}

	_, err := svc.Get(context.Background(), "1")

	require.ErrorIs(t, err, repo.err)
	assert.Equal(t, entity.KindInfrastructure, entity.KindOf(err))
}

func TestService_InvalidIDNeverReachesRepository(t *testing.T) {
	for _, raw := range []string{"not-a-number", "", "1.5", " 1", "1a", "0x10", "99999999999999999999"} {
		t.Run(raw, func(t *testing.T) {
			repo := newStub()
			svc := artUC.Service{Repo: repo}

			_, getErr := svc.Get(context.Background(), raw)
			existsErr := svc.Exists(context.Background(), raw)

			assert.ErrorIs(t, getErr, entity.ErrInvalidIdentifier)
			assert.ErrorIs(t, getErr, artUC.ErrInvalidArticleID)
			assert.ErrorIs(t, existsErr, entity.ErrInvalidIdentifier)
			assert.Equal(t, int32(0), repo.calls.Load(), "repository must not be called for %q", raw)
		})
	}
}

func TestService_Exists(t *testing.T) {
	repo := newStub()
	repo.data[2] = &entity.Article{ID: 2}
	svc := artUC.Service{Repo: repo}

	assert.NoError(t, svc.Exists(context.Background(), "2"))

	err := svc.Exists(context.Background(), "32")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))

	repo.err = errors.New("connection reset")
	err = svc.Exists(context.Background(), "2")
	assert.ErrorIs(t, err, repo.err)
	assert.Equal(t, entity.KindInfrastructure, entity.KindOf(err))
}

func TestService_ListWithCommentCounts(t *testing.T) {
	repo := newStub()
	repo.summary = []entity.ArticleSummary{
		{ID: 3, Title: "Eight pug gifs", CommentCount: 2},
		{ID: 2, Title: "Sony Vaio", CommentCount: 0},
		{ID: 1, Title: "Living", CommentCount: 11},
	}
	svc := artUC.Service{Repo: repo}

	got, err := svc.ListWithCommentCounts(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(repo.summary, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	repo.err = errors.New("db down")
	_, err = svc.ListWithCommentCounts(context.Background())
	assert.ErrorIs(t, err, repo.err)
}
