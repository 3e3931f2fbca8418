package main

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mleroux/videogen-ms-go/internal/config"
	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/handler/mcptool"
	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/repository/mariadb"
	"github.com/mleroux/videogen-ms-go/internal/task"
	"github.com/mleroux/videogen-ms-go/internal/usecase/account"
	"github.com/mleroux/videogen-ms-go/internal/usecase/catalog"
	"github.com/mleroux/videogen-ms-go/internal/usecase/library"
	videoSvc "github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

// The MCP binary serves tools over stdio. Logs go to stderr through the
// structured logger so stdout stays reserved for the protocol.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	gw, err := heygen.New(heygen.Config{
		APIKey:    cfg.HeyGenAPIKey,
		BaseURL:   cfg.HeyGenBaseURL,
		UploadURL: cfg.HeyGenUploadURL,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize provider gateway: %v", err)
		os.Exit(1)
	}

	genRepo := mariadb.NewGenerationRepository(database.DB)
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — background tracking is disabled")
	}

	svcs := mcptool.Services{
		Generator:         videoSvc.NewGenerator(gw, genRepo, dispatcher, db.NewUUID),
		TemplateGenerator: videoSvc.NewTemplateGenerator(gw, genRepo, dispatcher, db.NewUUID),
		StatusGetter:      videoSvc.NewStatusGetter(gw),
		Lister:            videoSvc.NewLister(gw),
		Avatars:           catalog.NewAvatarCatalog(gw),
		Voices:            catalog.NewVoiceCatalog(gw),
		Templates:         catalog.NewTemplateCatalog(gw),
		Assets:            library.NewAssetLibrary(gw),
		Folders:           library.NewFolderLibrary(gw),
		Account:           account.NewAccountInfo(gw),
	}

	s := mcptool.NewServer(svcs)

	logger.Info(ctx, "🚀 MCP server listening on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Errorf(ctx, "❌  MCP server failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  MCP server stopped")
}
