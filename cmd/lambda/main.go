package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/charak7/Heart-care/internal/config"
	"github.com/charak7/Heart-care/internal/data"
	"github.com/charak7/Heart-care/internal/handler"
	"github.com/charak7/Heart-care/internal/logging"
	"github.com/charak7/Heart-care/internal/service"
)

func main() {
	ctx := context.Background()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create store", zap.Error(err))
	}

	subs := service.NewSubmissionService(repo)
	h := handler.New(cfg, subs, logger)

	lambda.Start(h.Handle)
}

func newRepository(ctx context.Context, cfg *config.Config) (service.SubmissionRepository, error) {
	if cfg.StoreDriver == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		return data.NewRedisRepository(rdb, cfg.TableName), nil
	}
	client, err := data.NewDynamoClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return data.NewDynamoRepository(client, cfg.TableName), nil
}
