package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tweetfeed/config"
	gqlin "tweetfeed/internal/adapter/in/graphql"
	memstore "tweetfeed/internal/adapter/out/storage/inmemory"
	pgstore "tweetfeed/internal/adapter/out/storage/postgres"
	"tweetfeed/internal/service"
	"tweetfeed/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/graphql-go/handler"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		tweetStorage service.TweetStorage
		userStorage  service.UserStorage
		pool         *pgxpool.Pool
	)

	switch cfg.StorageType {
	case "postgres":
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		tweetStorage = pgstore.NewTweetStorage(pool, trmpgx.DefaultCtxGetter)
		userStorage = pgstore.NewUserStorage(pool, trmpgx.DefaultCtxGetter)

	default:
		tweetStorage = memstore.NewTweetStorage()
		userStorage = memstore.NewUserStorage()
	}

	tweetSvc := service.NewTweetService(tweetStorage)
	userSvc := service.NewUserService(userStorage)

	resolver := gqlin.NewResolver(tweetSvc, userSvc)
	schema, err := gqlin.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("building schema: %w", err)
	}

	gqlSrv := handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/query", gqlSrv)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		if a.pool != nil {
			a.pool.Close()
		}
		return nil

	case err := <-errCh:
		if a.pool != nil {
			a.pool.Close()
		}
		return err
	}
}
