package graphql

import (
	"context"
	"errors"
	"strconv"

	"tweetfeed/internal/model"
	"tweetfeed/internal/service"
	"tweetfeed/pkg/pagination"

	"github.com/graphql-go/graphql"
)

type TweetService interface {
	GetTweets(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Tweet], error)
}

type UserService interface {
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
}

type Resolver struct {
	tweetService TweetService
	userService  UserService
}

func NewResolver(tweetService TweetService, userService UserService) *Resolver {
	return &Resolver{
		tweetService: tweetService,
		userService:  userService,
	}
}

func (r *Resolver) resolveTweets(p graphql.ResolveParams) (any, error) {
	page, err := r.tweetService.GetTweets(p.Context, toPageRequest(p.Args))
	if err != nil {
		return nil, err
	}
	return toTweetPage(page), nil
}

func (r *Resolver) resolveTweetUser(p graphql.ResolveParams) (any, error) {
	t, ok := p.Source.(Tweet)
	if !ok {
		return nil, errors.New("malformed source")
	}

	userID, err := strconv.ParseInt(t.UserID, 10, 64)
	if err != nil {
		return nil, errors.New("malformed user id")
	}

	u, err := r.userService.GetUserByID(p.Context, userID)
	if errors.Is(err, service.ErrNotFound) {
		// The field is nullable; a dangling author resolves to null.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUserNode(u), nil
}
