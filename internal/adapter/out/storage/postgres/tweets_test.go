package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"tweetfeed/internal/adapter/out/storage"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func Test_scanTweetsQueryBuilder(t *testing.T) {
	tests := []struct {
		name     string
		params   storage.ScanParams
		wantSQL  string
		wantArgs []any
		wantErr  bool
	}{
		{
			name:    "no position",
			params:  storage.ScanParams{Limit: 3},
			wantSQL: "SELECT id, text, user_id, created_at FROM tweets ORDER BY id ASC LIMIT 3",
		},
		{
			name:     "positioned at",
			params:   storage.ScanParams{From: int64Ptr(7), Limit: 5},
			wantSQL:  "SELECT id, text, user_id, created_at FROM tweets WHERE id >= $1 ORDER BY id ASC LIMIT 5",
			wantArgs: []any{int64(7)},
		},
		{
			name:     "positioned after",
			params:   storage.ScanParams{From: int64Ptr(7), SkipFrom: true, Limit: 5},
			wantSQL:  "SELECT id, text, user_id, created_at FROM tweets WHERE id > $1 ORDER BY id ASC LIMIT 5",
			wantArgs: []any{int64(7)},
		},
		{
			name:    "zero limit",
			params:  storage.ScanParams{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			qb, err := scanTweetsQueryBuilder(tt.params)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)

			sql, args, err := qb.ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestTweetStorage_ScanTweets(t *testing.T) {
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewTweetStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("SELECT id, text, user_id, created_at FROM tweets WHERE id > $1 ORDER BY id ASC LIMIT 2")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "text", "user_id", "created_at"}).
			AddRow(int64(4), "tweet #4", int64(1), now).
			AddRow(int64(5), "tweet #5", int64(2), now))

	got, err := st.ScanTweets(context.Background(), storage.ScanParams{
		From:     int64Ptr(3),
		SkipFrom: true,
		Limit:    2,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(4), got[0].ID)
	require.Equal(t, "tweet #4", got[0].Text)
	require.Equal(t, int64(5), got[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetStorage_ScanTweets_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewTweetStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("SELECT id, text, user_id, created_at FROM tweets ORDER BY id ASC LIMIT 3")).
		WillReturnError(errors.New("connection refused"))

	_, err = st.ScanTweets(context.Background(), storage.ScanParams{Limit: 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetStorage_GetTweetByID(t *testing.T) {
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewTweetStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("SELECT id, text, user_id, created_at FROM tweets WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "text", "user_id", "created_at"}).
			AddRow(int64(7), "tweet #7", int64(2), now))

	got, err := st.GetTweetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.ID)
	require.Equal(t, int64(2), got.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetStorage_GetTweetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewTweetStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("SELECT id, text, user_id, created_at FROM tweets WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err = st.GetTweetByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetStorage_CreateTweet(t *testing.T) {
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewTweetStorage(mock, trmpgx.DefaultCtxGetter)

	mock.
		ExpectQuery(regexp.QuoteMeta("INSERT INTO tweets (text,user_id) VALUES ($1,$2) RETURNING id, text, user_id, created_at")).
		WithArgs("hello", int64(1)).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "text", "user_id", "created_at"}).
			AddRow(int64(1), "hello", int64(1), now))

	got, err := st.CreateTweet(context.Background(), CreateTweetRequest{UserID: 1, Text: "hello"})
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, "hello", got.Text)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetStorage_CreateTweet_Validation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	st := NewTweetStorage(mock, trmpgx.DefaultCtxGetter)

	tests := []struct {
		name string
		req  CreateTweetRequest
	}{
		{name: "missing user", req: CreateTweetRequest{Text: "hello"}},
		{name: "missing text", req: CreateTweetRequest{UserID: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.CreateTweet(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidRequest)
		})
	}

	require.NoError(t, mock.ExpectationsWereMet())
}
