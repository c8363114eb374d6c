package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestUserStorage_GetUserByID(t *testing.T) {
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewUserStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(1), "alice", now))

	got, err := st.GetUserByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, "alice", got.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewUserStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM users WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err = st.GetUserByID(context.Background(), 9)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStorage_CreateUser(t *testing.T) {
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewUserStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name) VALUES ($1) RETURNING id, name, created_at")).
		WithArgs("bob").
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(2), "bob", now))

	got, err := st.CreateUser(context.Background(), CreateUserRequest{Name: "bob"})
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ID)
	require.Equal(t, "bob", got.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStorage_CreateUser_Validation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewUserStorage(mock, trmpgx.DefaultCtxGetter)

	_, err = st.CreateUser(context.Background(), CreateUserRequest{})
	require.ErrorIs(t, err, ErrInvalidRequest)

	require.NoError(t, mock.ExpectationsWereMet())
}
