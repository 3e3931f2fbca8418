package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/mleroux/videogen-ms-go/internal/cache"
	"github.com/mleroux/videogen-ms-go/internal/config"
	"github.com/mleroux/videogen-ms-go/internal/db"
	workerHandler "github.com/mleroux/videogen-ms-go/internal/handler/worker"
	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/repository/mariadb"
	"github.com/mleroux/videogen-ms-go/internal/storage"
	"github.com/mleroux/videogen-ms-go/internal/task"
	videoSvc "github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	gw := initGateway(cfg)

	strg := initStorage(cfg)
	if err := strg.InitBucket(cfg.ArchiveBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.ArchiveBucket, err)
		os.Exit(1)
	}

	repo := mariadb.NewGenerationRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	trackSvc := videoSvc.NewTracker(gw, repo, ca, strg, cfg.ArchiveBucket)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeTrackGeneration, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseTrackGenerationPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.TrackGenerationHandler(ctx, p, trackSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initGateway(cfg *config.Settings) port.Gateway {
	gw, err := heygen.New(heygen.Config{
		APIKey:    cfg.HeyGenAPIKey,
		BaseURL:   cfg.HeyGenBaseURL,
		UploadURL: cfg.HeyGenUploadURL,
	})
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize provider gateway: %v", err)
		os.Exit(1)
	}
	return gw
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	// Close DB
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
