package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"citygis/internal/api"
	"citygis/internal/config"
	"citygis/internal/redis"
	"citygis/internal/service"
	"citygis/internal/storage/mongodb"
	"citygis/internal/storage/postgres"
	"citygis/internal/workers"
	"citygis/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Mongo      *mongodb.Mongo
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Reconciler *workers.OrphanReconciler
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing MongoDB")
	docStore, err := mongodb.NewMongo(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init mongodb: %w", err)
	}

	logger.Info("initializing Postgres")
	spatialStore, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	orphanQueue := redis.NewOrphanQueue(redisClient.Client, "orphans:queue")

	incidentSvc := service.NewIncidentService(
		docStore.Incidents,
		spatialStore.Spatial,
		orphanQueue,
		logger,
		cfg.StoreTimeout,
	)
	querySvc := service.NewQueryService(spatialStore.Spatial, logger)
	svc := service.NewService(incidentSvc, querySvc)

	reconciler := workers.NewOrphanReconciler(
		orphanQueue,
		docStore.Incidents,
		spatialStore.Spatial,
		logger,
		cfg.Reconciler.MaxAttempts,
		cfg.Reconciler.PopTimeout,
	)

	httpServer := api.NewServer(cfg, logger, svc, docStore, spatialStore)
	logger.Info("initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Mongo:      docStore,
		Postgres:   spatialStore,
		Redis:      redisClient,
		Reconciler: reconciler,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Mongo.Close(closeCtx); err != nil {
		c.logger.Error("mongo close failed", slog.String("err", err.Error()))
	}
	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
