package graphql

import "github.com/graphql-go/graphql"

// NewSchema builds the executable schema at startup. The only root
// field is tweets(first, after); after is the integer form of a cursor
// previously returned in pageInfo.endCursor.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	tweetType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Tweet",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"text":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"user": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveTweetUser,
			},
		},
	})

	pageInfoType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "PageInfo",
		Description: "Information about pagination in a connection.",
		Fields: graphql.Fields{
			"endCursor":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"hasNextPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	tweetEdgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TweetEdge",
		Fields: graphql.Fields{
			"cursor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"node":   &graphql.Field{Type: graphql.NewNonNull(tweetType)},
		},
	})

	tweetPageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TweetPage",
		Fields: graphql.Fields{
			"edges":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(tweetEdgeType)))},
			"pageInfo": &graphql.Field{Type: graphql.NewNonNull(pageInfoType)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"tweets": &graphql.Field{
				Type: graphql.NewNonNull(tweetPageType),
				Args: graphql.FieldConfigArgument{
					"first": &graphql.ArgumentConfig{Type: graphql.Int},
					"after": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveTweets,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
