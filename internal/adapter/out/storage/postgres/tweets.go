package postgres

import (
	"context"
	"errors"
	"fmt"

	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/internal/model"
	"tweetfeed/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
)

var (
	ErrBuildingQuery  = errors.New("error building sql-query")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)

type TweetStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewTweetStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *TweetStorage {
	return &TweetStorage{
		db:     db,
		getter: getter,
	}
}

func scanTweetsQueryBuilder(params storage.ScanParams) (sq.SelectBuilder, error) {
	if params.Limit <= 0 {
		return sq.SelectBuilder{}, fmt.Errorf("limit must be > 0: %w", ErrInvalidRequest)
	}

	qb := sq.
		Select(
			tableinfo.TweetIDColumn,
			tableinfo.TweetTextColumn,
			tableinfo.TweetUserIDColumn,
			tableinfo.TweetCreatedAtColumn,
		).
		From(tableinfo.TweetsTableName).
		OrderBy(tableinfo.TweetIDColumn + " ASC").
		Limit(uint64(params.Limit)).
		PlaceholderFormat(sq.Dollar)

	if params.From != nil {
		if params.SkipFrom {
			qb = qb.Where(sq.Gt{tableinfo.TweetIDColumn: *params.From})
		} else {
			qb = qb.Where(sq.GtOrEq{tableinfo.TweetIDColumn: *params.From})
		}
	}

	return qb, nil
}

// ScanTweets reads at most params.Limit tweets ascending by id, keyset
// positioned at params.From. A position with no matching row is legal:
// the comparison predicate simply starts at the next existing id.
func (s *TweetStorage) ScanTweets(ctx context.Context, params storage.ScanParams) ([]model.Tweet, error) {
	qb, err := scanTweetsQueryBuilder(params)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error scanning tweets: %w", err)
	}
	defer rows.Close()

	out := make([]model.Tweet, 0, params.Limit)
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(
			&t.ID,
			&t.Text,
			&t.UserID,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

func (s *TweetStorage) GetTweetByID(ctx context.Context, tweetID int64) (model.Tweet, error) {
	var out model.Tweet

	query, args, err := sq.
		Select(
			tableinfo.TweetIDColumn,
			tableinfo.TweetTextColumn,
			tableinfo.TweetUserIDColumn,
			tableinfo.TweetCreatedAtColumn,
		).
		From(tableinfo.TweetsTableName).
		Where(sq.Eq{tableinfo.TweetIDColumn: tweetID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.Text,
		&out.UserID,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, ErrNotFound
		}
		return out, fmt.Errorf("exec select tweet by id: %w", err)
	}

	return out, nil
}

type CreateTweetRequest struct {
	UserID int64  `validate:"required,gt=0"`
	Text   string `validate:"required"`
}

func (s *TweetStorage) CreateTweet(ctx context.Context, req CreateTweetRequest) (model.Tweet, error) {
	var out model.Tweet

	if err := validator.New().Struct(req); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	query, args, err := sq.
		Insert(tableinfo.TweetsTableName).
		Columns(
			tableinfo.TweetTextColumn,
			tableinfo.TweetUserIDColumn,
		).
		Values(req.Text, req.UserID).
		Suffix(fmt.Sprintf("RETURNING %s, %s, %s, %s",
			tableinfo.TweetIDColumn,
			tableinfo.TweetTextColumn,
			tableinfo.TweetUserIDColumn,
			tableinfo.TweetCreatedAtColumn,
		)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.Text,
		&out.UserID,
		&out.CreatedAt,
	); err != nil {
		return out, fmt.Errorf("exec error creating tweet: %w", err)
	}

	return out, nil
}
