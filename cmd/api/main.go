package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"designhub/internal/api"
	"designhub/internal/auth"
	"designhub/internal/config"
	"designhub/internal/database"
	"designhub/internal/seed"
	"designhub/internal/storage"
	"designhub/internal/store"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	logger.Info("api bootstrapped",
		slog.String("db_host", cfg.Database.Host),
		slog.Int("db_port", cfg.Database.Port),
		slog.String("db_name", cfg.Database.Name),
		slog.String("db_sslmode", cfg.Database.SSLMode),
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	logger.Info("database ready")

	ctx := context.Background()
	catalog := store.New(db)
	passwords := auth.NewPasswords(cfg.Auth.HashPasswords)

	// 种子数据必须在开始监听之前写完。
	if _, err := seed.Run(ctx, catalog, passwords.Prepare, logger); err != nil {
		log.Fatalf("seed: %v", err)
	}

	deps := api.Dependencies{
		Catalog:   catalog,
		Passwords: passwords,
		StaticDir: cfg.API.StaticDir,
	}

	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("ping redis: %v", err)
		}
		deps.LoginLimiter = api.NewLoginLimiter(redisClient, cfg.Auth.LoginRateLimitPerHour)

		taskClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
		defer taskClient.Close()
		deps.Tasks = taskClient
		logger.Info("redis ready", slog.String("addr", cfg.Redis.Addr()))
	} else {
		logger.Warn("REDIS_HOST not set, login rate limit and order events disabled")
	}

	if cfg.MinIO.Enabled() {
		storageClient, err := storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("init storage client: %v", err)
		}
		deps.Uploads = storageClient
		if cfg.Clamd.Addr != "" {
			deps.Scanner = api.ClamdScanner{Addr: cfg.Clamd.Addr}
		}
		logger.Info("storage ready", slog.String("bucket", cfg.MinIO.Bucket), slog.Bool("virus_scan", deps.Scanner != nil))
	}

	router := api.NewRouter(cfg.API, logger)
	api.RegisterRoutes(router, deps)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("addr", address))
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
