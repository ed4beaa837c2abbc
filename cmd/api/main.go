package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"crm-graphql/internal/auth"
	"crm-graphql/internal/config"
	"crm-graphql/internal/crm"
	"crm-graphql/internal/graph"
	"crm-graphql/internal/httpx"
	"crm-graphql/internal/kafkax"
	"crm-graphql/internal/postgres"
	"crm-graphql/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Redis (analytics cache)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for order lifecycle events
	prod := kafkax.NewProducer(cfg.KafkaBrokers, crm.TopicOrderEvents, 1024, log)
	prod.Start(ctx)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	svc := &crm.Service{
		Users:       &postgres.UserRepo{DB: db},
		Products:    &postgres.ProductRepo{DB: db},
		Clients:     &postgres.ClientRepo{DB: db},
		Orders:      &postgres.OrderRepo{DB: db},
		Tokens:      tokens,
		Events:      prod,
		Cache:       rdb,
		Log:         log,
		ServiceName: cfg.ServiceName,
	}

	gql, err := graph.NewHandler(svc, tokens, cfg.AuthStrict, log)
	if err != nil {
		log.Fatal("schema", zap.Error(err))
	}

	router := httpx.NewRouter()
	router.Handle("/graphql", gql)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // stop accepting, flush remaining events
	prod.WaitClosed() // drain
}
