package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/infra/adapter/persistence/sqlite"
)

func TestCommentRepo_ListByArticle(t *testing.T) {
	t.Parallel()

	repo := sqlite.NewCommentRepo(seededDB(t))
	got, err := repo.ListByArticle(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 11)

	ids := make([]int64, 0, len(got))
	for _, c := range got {
		assert.Equal(t, int64(1), c.ArticleID)
		assert.NotEmpty(t, c.Body)
		assert.NotEmpty(t, c.Author)
		assert.False(t, c.CreatedAt.IsZero())
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{18, 13, 12, 9, 8, 7, 6, 5, 4, 3, 2}, ids)
}

func TestCommentRepo_ListByArticle_Empty(t *testing.T) {
	t.Parallel()

	repo := sqlite.NewCommentRepo(seededDB(t))
	for _, id := range []int64{2, 32} {
		got, err := repo.ListByArticle(context.Background(), id)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}
