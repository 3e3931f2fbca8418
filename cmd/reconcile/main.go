package main

import (
	"context"
	"log"

	"github.com/mleroux/videogen-ms-go/internal/config"
	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/repository/mariadb"
	"github.com/mleroux/videogen-ms-go/internal/task"
	videoSvc "github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	dispatcher := initDispatcher(cfg)
	repo := mariadb.NewGenerationRepository(database.DB)

	reconciler := videoSvc.NewReconciler(repo, dispatcher)
	count, err := reconciler.ReconcileGenerations(context.Background())
	if err != nil {
		log.Fatalf("❌  Backlog reconciliation failed: %v", err)
	}
	log.Printf("✅  Backlog reconciliation completed, %d generations re-enqueued", count)
}

func initDb(cfg *config.Settings) *db.Database {
	log.Println("initialising database...")
	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		log.Fatalf("❌  Failed to connect to db: %v", err)
	}
	return database
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
