package graphql

import "time"

// Transport-facing shapes. The json tags are what the graphql-go default
// resolver matches field names against.

type Tweet struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

type TweetEdge struct {
	Cursor string `json:"cursor"`
	Node   Tweet  `json:"node"`
}

type TweetPage struct {
	Edges    []TweetEdge `json:"edges"`
	PageInfo PageInfo    `json:"pageInfo"`
}
