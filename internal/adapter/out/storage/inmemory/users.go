package inmemory

import (
	"context"
	"sync"
	"time"

	"tweetfeed/internal/model"
	"tweetfeed/internal/service"
)

type UserStorage struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]model.User
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		nextID: 1,
		byID:   make(map[int64]model.User),
	}
}

func (s *UserStorage) CreateUser(_ context.Context, in model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextID
	s.nextID++
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.byID[in.ID] = in
	return in, nil
}

func (s *UserStorage) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.byID[userID]; ok {
		return u, nil
	}
	return model.User{}, service.ErrNotFound
}
