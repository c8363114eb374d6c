package service

import (
	"context"
	"fmt"

	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/internal/model"
	"tweetfeed/pkg/pagination"
)

const (
	DefaultTweetsLimit = 50
	MaxTweetsLimit     = 250
)

//go:generate mockgen -source=tweets.go -destination=./tweet_storage_mock.go -package=service tweetfeed/internal/service TweetStorage
type TweetStorage interface {
	ScanTweets(ctx context.Context, params storage.ScanParams) ([]model.Tweet, error)
}

type TweetServiceOption func(*TweetService)

// WithStrictHasNextPage makes the lookahead probe skip the boundary row
// and report HasNextPage whenever the probe returns anything at all.
// The default probe counts the boundary row itself, so HasNextPage goes
// false as soon as fewer than limit rows remain at-or-after the page's
// last id — even when one short final page still exists.
func WithStrictHasNextPage() TweetServiceOption {
	return func(s *TweetService) {
		s.strictHasNext = true
	}
}

type TweetService struct {
	tweetStorage  TweetStorage
	strictHasNext bool
}

func NewTweetService(tweetStorage TweetStorage, opts ...TweetServiceOption) *TweetService {
	s := &TweetService{
		tweetStorage: tweetStorage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTweets returns one page of the tweet feed, ascending by id. Two
// sequential reads per call: the page scan, then a lookahead probe from
// the page's last id to decide HasNextPage. A write landing between the
// two reads can leave HasNextPage inconsistent with the final state.
func (s *TweetService) GetTweets(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Tweet], error) {
	var page pagination.Page[model.Tweet]

	limit := DefaultTweetsLimit
	if in.First != nil {
		if *in.First <= 0 {
			return page, fmt.Errorf("first must be > 0: %w", ErrInvalidRequest)
		}
		limit = min(*in.First, MaxTweetsLimit)
	}

	params := storage.ScanParams{Limit: limit}
	if in.After != nil && *in.After != "" {
		cur, err := pagination.Decode(*in.After)
		if err != nil {
			return page, fmt.Errorf("%w: decoding after-cursor: %v", ErrInvalidCursor, err)
		}
		from := int64(cur)
		params.From = &from
		params.SkipFrom = true
	}

	tweets, err := s.tweetStorage.ScanTweets(ctx, params)
	if err != nil {
		return page, err
	}

	if len(tweets) == 0 {
		return page, nil
	}

	lastID := tweets[len(tweets)-1].ID

	ahead, err := s.tweetStorage.ScanTweets(ctx, storage.ScanParams{
		From:     &lastID,
		SkipFrom: s.strictHasNext,
		Limit:    limit,
	})
	if err != nil {
		return page, err
	}

	var hasNext bool
	if s.strictHasNext {
		hasNext = len(ahead) > 0
	} else {
		// The probe includes the boundary row, so it fills only when at
		// least limit rows exist at-or-after lastID.
		hasNext = len(ahead) >= limit
	}

	edges := make([]pagination.Edge[model.Tweet], 0, len(tweets))
	for _, t := range tweets {
		edges = append(edges, pagination.Edge[model.Tweet]{
			Cursor: pagination.Cursor(t.ID).Encode(),
			Node:   t,
		})
	}

	page.Edges = edges
	page.PageInfo = pagination.PageInfo{
		EndCursor:   pagination.Cursor(lastID).Encode(),
		HasNextPage: hasNext,
	}
	return page, nil
}
