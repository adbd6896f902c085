package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/charak7/Heart-care/internal/config"
	"github.com/charak7/Heart-care/internal/data"
	"github.com/charak7/Heart-care/internal/handler"
	"github.com/charak7/Heart-care/internal/logging"
	"github.com/charak7/Heart-care/internal/middleware"
	"github.com/charak7/Heart-care/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

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

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	h.RegisterRoutes(r)

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
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
