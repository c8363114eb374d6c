package inmemory

import (
	"context"
	"sync"
	"time"

	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/internal/model"
	"tweetfeed/internal/service"
)

// TweetStorage keeps tweets in a slice indexed by id. Index 0 holds a
// zero-value sentinel so slice position and id coincide.
type TweetStorage struct {
	mu     sync.RWMutex
	tweets []model.Tweet
	byID   map[int64]model.Tweet
}

func NewTweetStorage() *TweetStorage {
	return &TweetStorage{
		tweets: []model.Tweet{{}},
		byID:   make(map[int64]model.Tweet),
	}
}

func (s *TweetStorage) CreateTweet(_ context.Context, in model.Tweet) (model.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = int64(len(s.tweets))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.tweets = append(s.tweets, in)
	s.byID[in.ID] = in
	return in, nil
}

func (s *TweetStorage) GetTweetByID(_ context.Context, tweetID int64) (model.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.byID[tweetID]; ok {
		return t, nil
	}
	return model.Tweet{}, service.ErrNotFound
}

func (s *TweetStorage) ScanTweets(_ context.Context, params storage.ScanParams) ([]model.Tweet, error) {
	if params.Limit <= 0 {
		return nil, service.ErrInvalidRequest
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start := int64(1)
	if params.From != nil {
		start = *params.From
		if params.SkipFrom {
			start++
		}
		if start < 1 {
			start = 1
		}
	}

	out := make([]model.Tweet, 0, params.Limit)
	for id := start; id <= int64(len(s.tweets)-1) && len(out) < params.Limit; id++ {
		t := s.tweets[id]
		if t.ID != 0 {
			out = append(out, t)
		}
	}
	return out, nil
}
