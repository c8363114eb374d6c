package postgres

import (
	"context"
	"errors"
	"fmt"

	"tweetfeed/internal/model"
	"tweetfeed/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
)

type UserStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewUserStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *UserStorage {
	return &UserStorage{
		db:     db,
		getter: getter,
	}
}

func (s *UserStorage) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	var out model.User

	query, args, err := sq.
		Select(
			tableinfo.UserIDColumn,
			tableinfo.UserNameColumn,
			tableinfo.UserCreatedAtColumn,
		).
		From(tableinfo.UsersTableName).
		Where(sq.Eq{tableinfo.UserIDColumn: userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.Name,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, ErrNotFound
		}
		return out, fmt.Errorf("exec select user by id: %w", err)
	}

	return out, nil
}

type CreateUserRequest struct {
	Name string `validate:"required"`
}

func (s *UserStorage) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	var out model.User

	if err := validator.New().Struct(req); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	query, args, err := sq.
		Insert(tableinfo.UsersTableName).
		Columns(tableinfo.UserNameColumn).
		Values(req.Name).
		Suffix(fmt.Sprintf("RETURNING %s, %s, %s",
			tableinfo.UserIDColumn,
			tableinfo.UserNameColumn,
			tableinfo.UserCreatedAtColumn,
		)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.Name,
		&out.CreatedAt,
	); err != nil {
		return out, fmt.Errorf("exec error creating user: %w", err)
	}

	return out, nil
}
