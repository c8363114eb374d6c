package graphql

import (
	"strconv"

	"tweetfeed/internal/model"
	"tweetfeed/pkg/pagination"
)

func toTweetNode(t model.Tweet) Tweet {
	return Tweet{
		ID:        strconv.FormatInt(t.ID, 10),
		Text:      t.Text,
		UserID:    strconv.FormatInt(t.UserID, 10),
		CreatedAt: t.CreatedAt,
	}
}

func toUserNode(u model.User) User {
	return User{
		ID:   strconv.FormatInt(u.ID, 10),
		Name: u.Name,
	}
}

func toTweetPage(page pagination.Page[model.Tweet]) TweetPage {
	edges := make([]TweetEdge, 0, len(page.Edges))
	for _, e := range page.Edges {
		edges = append(edges, TweetEdge{
			Cursor: e.Cursor,
			Node:   toTweetNode(e.Node),
		})
	}
	return TweetPage{
		Edges: edges,
		PageInfo: PageInfo{
			EndCursor:   page.PageInfo.EndCursor,
			HasNextPage: page.PageInfo.HasNextPage,
		},
	}
}

func toPageRequest(args map[string]any) pagination.PageRequest {
	var req pagination.PageRequest
	if v, ok := args["first"].(int); ok {
		req.First = &v
	}
	if v, ok := args["after"].(int); ok {
		s := pagination.Cursor(v).Encode()
		req.After = &s
	}
	return req
}
