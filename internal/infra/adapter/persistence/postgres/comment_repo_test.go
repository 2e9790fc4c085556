package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"nc-news/internal/domain/entity"
	pg "nc-news/internal/infra/adapter/persistence/postgres"
)

func TestCommentRepo_ListByArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	created := time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC)
	cols := []string{"comment_id", "article_id", "body", "created_at", "votes", "author"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE article_id = $1\nORDER BY comment_id DESC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(18), int64(1), "This morning, I showered for nine minutes.", created, int64(16), "butter_bridge").
			AddRow(int64(5), int64(1), "I hate streaming noses", created, int64(0), "icellusedkars"))

	got, err := pg.NewCommentRepo(db).ListByArticle(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByArticle err=%v", err)
	}
	want := []*entity.Comment{
		{ID: 18, ArticleID: 1, Body: "This morning, I showered for nine minutes.", CreatedAt: created, Votes: 16, Author: "butter_bridge"},
		{ID: 5, ArticleID: 1, Body: "I hate streaming noses", CreatedAt: created, Author: "icellusedkars"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_ListByArticle_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM comments").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id"}))

	got, err := pg.NewCommentRepo(db).ListByArticle(context.Background(), 2)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestCommentRepo_ListByArticle_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	dbErr := errors.New("timeout")
	mock.ExpectQuery("FROM comments").WillReturnError(dbErr)

	_, err := pg.NewCommentRepo(db).ListByArticle(context.Background(), 1)
	if !errors.Is(err, dbErr) {
		t.Fatalf("err=%v, want wrapped %v", err, dbErr)
	}
}
