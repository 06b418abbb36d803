package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"microblog/internal/service"
)

// Digest of "pw123"; the hasher is the unsalted SHA-256 hex scheme.
const pw123Digest = "23d47445adfb8991789b459b6ba1b974d727d310aa9d80b7c2875b9430c0ba25"

// newMock builds a pgxmock pool whose cleanup asserts that every expected
// statement ran — in particular that each Begin was paired with a Commit or
// Rollback, so no path leaks its connection scope.
func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserServiceRegister(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", pw123Digest, "Alice", "A", "alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	id, err := svc.Register(context.Background(), "alice", "pw123", "Alice", "A", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", pw123Digest, "", "", "").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	mock.ExpectRollback()

	_, err := svc.Register(context.Background(), "alice", "pw123", "", "", "")
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestUserServiceDelete(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT password_hash FROM users").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"password_hash"}).AddRow(pw123Digest))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.Delete(context.Background(), "alice", "pw123"))
}

func TestUserServiceDeleteWrongPassword(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	// No DELETE is expected: the credential check short-circuits, and the
	// scope still rolls back instead of leaking.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT password_hash FROM users").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"password_hash"}).AddRow(pw123Digest))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), "alice", "wrongpw")
	assert.ErrorIs(t, err, service.ErrWrongPassword)
}

func TestUserServiceDeleteUnknownUser(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT password_hash FROM users").
		WithArgs("bob").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), "bob", "pw123")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserServiceList(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, username, password_hash, name, last_name, email FROM users").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "name", "last_name", "email"}).
			AddRow(int64(1), "alice", pw123Digest, "Alice", "A", "alice@example.com"))
	mock.ExpectRollback()

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestUserServiceGetWithPosts(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, username, password_hash, name, last_name, email FROM users").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "name", "last_name", "email"}).
			AddRow(int64(1), "alice", pw123Digest, "Alice", "A", "alice@example.com"))
	mock.ExpectQuery("SELECT id, title, content, author_id, created_on FROM posts").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "content", "author_id", "created_on"}))
	mock.ExpectRollback()

	u, posts, err := svc.GetWithPosts(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Empty(t, posts)
}

func TestUserServiceGetWithPostsNotFound(t *testing.T) {
	mock := newMock(t)
	svc := service.NewUserService(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, username, password_hash, name, last_name, email FROM users").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, _, err := svc.GetWithPosts(context.Background(), "ghost")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
