package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/repo"
)

const postColumnsQuery = "SELECT id, title, content, author_id, created_on FROM posts"

func TestPostRepoCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("Hello", "World", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.NewPostRepo(mock).Create(context.Background(), "Hello", "World", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestPostRepoFindByID(t *testing.T) {
	mock := newMock(t)
	created := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	mock.ExpectQuery(postColumnsQuery).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "content", "author_id", "created_on"}).
			AddRow(int64(7), "Hello", "World", int64(1), created))

	p, err := repo.NewPostRepo(mock).FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, int64(1), p.AuthorID)
	assert.Equal(t, created, p.CreatedOn)
}

func TestPostRepoFindAuthorID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT author_id FROM posts").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"author_id"}).AddRow(int64(1)))

	authorID, err := repo.NewPostRepo(mock).FindAuthorID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), authorID)
}

func TestPostRepoUpdateNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("UPDATE posts SET").
		WithArgs(int64(99), "T", "C").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.NewPostRepo(mock).Update(context.Background(), 99, "T", "C")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestPostRepoDelete(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.NewPostRepo(mock).Delete(context.Background(), 7))
}

func TestPostRepoListByAuthor(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(postColumnsQuery).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "content", "author_id", "created_on"}).
			AddRow(int64(8), "Second", "post", int64(1), now).
			AddRow(int64(7), "First", "post", int64(1), now.Add(-time.Hour)))

	posts, err := repo.NewPostRepo(mock).ListByAuthor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(8), posts[0].ID)
}
