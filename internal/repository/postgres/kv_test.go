package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbook/internal/kvstore"
)

func newMock(t *testing.T) (*KVBackend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVBackend(db), mock
}

func TestKVBackend_Get(t *testing.T) {
	backend, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries WHERE key = $1`)).
		WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"1"}]`))

	got, err := backend.Get(context.Background(), "trips")

	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVBackend_GetMissing(t *testing.T) {
	backend, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries`)).
		WithArgs("profile").
		WillReturnError(sql.ErrNoRows)

	_, err := backend.Get(context.Background(), "profile")

	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVBackend_SetUpserts(t *testing.T) {
	backend, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_entries`)).
		WithArgs("tasks", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, backend.Set(context.Background(), "tasks", []byte("[]")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVBackend_RemoveAndClear(t *testing.T) {
	backend, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries WHERE key = $1`)).
		WithArgs("trip_events_1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries`)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	ctx := context.Background()
	require.NoError(t, backend.Remove(ctx, "trip_events_1"))
	require.NoError(t, backend.Clear(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVBackend_ErrorsAreSwallowedByStore(t *testing.T) {
	backend, mock := newMock(t)
	store := kvstore.New(backend, nil)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_entries`)).
		WillReturnError(errors.New("permission denied"))

	assert.False(t, store.Set(context.Background(), "trips", []int{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
