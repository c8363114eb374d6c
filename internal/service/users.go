package service

import (
	"context"
	"fmt"

	"tweetfeed/internal/model"
)

//go:generate mockgen -source=users.go -destination=./user_storage_mock.go -package=service tweetfeed/internal/service UserStorage
type UserStorage interface {
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, fmt.Errorf("userID must be > 0: %w", ErrInvalidRequest)
	}
	return s.userStorage.GetUserByID(ctx, userID)
}
