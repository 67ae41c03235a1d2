package kvstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pgGet    = `(?s)^SELECT\s+value\s+FROM\s+metadata\s+WHERE\s+key\s*=\s*\$1$`
	pgSet    = `(?s)^INSERT\s+INTO\s+metadata\s*\(key,\s*value\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\(key\)\s+DO\s+UPDATE\s+SET\s+value\s*=\s*excluded\.value$`
	pgDelete = `(?s)^DELETE\s+FROM\s+metadata\s+WHERE\s+key\s*=\s*\$1$`
)

func newPostgresStoreWithMock(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return newSQLStore(db, postgresQueries), mock
}

func TestPostgresQueries_Get(t *testing.T) {
	ctx := context.Background()
	s, mock := newPostgresStoreWithMock(t)

	mock.ExpectQuery(pgGet).WithArgs("user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"id":"u1"}`)))
	mock.ExpectQuery(pgGet).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectQuery(pgGet).WithArgs("users").
		WillReturnError(errors.New("db down"))

	v, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"u1"}`), v)

	v, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = s.Get(ctx, "users")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`failed to get metadata\[users\]: db down`), err.Error())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQueries_SetAndDelete(t *testing.T) {
	ctx := context.Background()
	s, mock := newPostgresStoreWithMock(t)

	mock.ExpectExec(pgSet).WithArgs("cart-u1", []byte("[]")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgSet).WithArgs("empty", []byte{}).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgDelete).WithArgs("user").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgDelete).WithArgs("user").WillReturnError(errors.New("db down"))

	require.NoError(t, s.Set(ctx, "cart-u1", []byte("[]")))
	require.NoError(t, s.Set(ctx, "empty", nil))
	require.NoError(t, s.Delete(ctx, "user"))
	assert.ErrorContains(t, s.Delete(ctx, "user"), "failed to delete metadata[user]")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQueries_UpdateCommits(t *testing.T) {
	ctx := context.Background()
	s, mock := newPostgresStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(pgSet).WithArgs("users", []byte("[]")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgSet).WithArgs("user", []byte("{}")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(ctx, func(ctx context.Context, w Writer) error {
		if err := w.Set(ctx, "users", []byte("[]")); err != nil {
			return err
		}
		return w.Set(ctx, "user", []byte("{}"))
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQueries_UpdateRollsBack(t *testing.T) {
	ctx := context.Background()
	s, mock := newPostgresStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(pgSet).WithArgs("users", []byte("[]")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgSet).WithArgs("user", []byte("{}")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Update(ctx, func(ctx context.Context, w Writer) error {
		if err := w.Set(ctx, "users", []byte("[]")); err != nil {
			return err
		}
		return w.Set(ctx, "user", []byte("{}"))
	})
	assert.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQueries_BeginFails(t *testing.T) {
	s, mock := newPostgresStoreWithMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := s.Update(context.Background(), func(context.Context, Writer) error {
		called = true
		return nil
	})
	assert.ErrorContains(t, err, "no connection")
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}
