package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/db"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestScopeCommit(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	ctx := context.Background()
	scope, err := db.Open(ctx, mock)
	require.NoError(t, err)
	require.NoError(t, scope.Commit(ctx))

	// Close after Commit must not roll back.
	scope.Close(ctx)
}

func TestScopeCloseRollsBack(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx := context.Background()
	scope, err := db.Open(ctx, mock)
	require.NoError(t, err)

	scope.Close(ctx)
}

func TestScopeOpenError(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := db.Open(context.Background(), mock)
	assert.Error(t, err)
}

func TestScopeQueriesRunInTransaction(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))
	mock.ExpectRollback()

	ctx := context.Background()
	scope, err := db.Open(ctx, mock)
	require.NoError(t, err)
	defer scope.Close(ctx)

	var one int
	require.NoError(t, scope.QueryRow(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}
