// Seeds the postgres store with a couple of users and a small tweet
// timeline so the playground has something to page through.
package main

import (
	"context"
	"fmt"
	"os"

	"tweetfeed/config"
	"tweetfeed/internal/adapter/out/storage/postgres"
	"tweetfeed/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	ctx := context.Background()

	log := logger.New()
	ctx = logger.WithLogger(ctx, log)

	cfg := config.LoadConfig()
	if cfg.StorageType != "postgres" {
		log.Error("seed requires STORAGE_TYPE=postgres")
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.Postgres.GetDSN())
	if err != nil {
		log.Error("error creating pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userStorage := postgres.NewUserStorage(pool, trmpgx.DefaultCtxGetter)
	tweetStorage := postgres.NewTweetStorage(pool, trmpgx.DefaultCtxGetter)

	var userIDs []int64
	for _, name := range []string{"alice", "bob"} {
		u, err := userStorage.CreateUser(ctx, postgres.CreateUserRequest{Name: name})
		if err != nil {
			log.Error("error creating user", "name", name, "error", err)
			os.Exit(1)
		}
		userIDs = append(userIDs, u.ID)
	}

	const tweetCount = 10
	for i := 1; i <= tweetCount; i++ {
		_, err := tweetStorage.CreateTweet(ctx, postgres.CreateTweetRequest{
			UserID: userIDs[i%len(userIDs)],
			Text:   fmt.Sprintf("tweet #%d", i),
		})
		if err != nil {
			log.Error("error creating tweet", "n", i, "error", err)
			os.Exit(1)
		}
	}

	log.Info("seed complete", "users", len(userIDs), "tweets", tweetCount)
}
