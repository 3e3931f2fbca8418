package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mleroux/videogen-ms-go/internal/cache"
	"github.com/mleroux/videogen-ms-go/internal/config"
	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/handler/api"
	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/logger"
	cMiddleware "github.com/mleroux/videogen-ms-go/internal/middleware"
	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/renderer"
	"github.com/mleroux/videogen-ms-go/internal/repository/mariadb"
	"github.com/mleroux/videogen-ms-go/internal/storage"
	"github.com/mleroux/videogen-ms-go/internal/task"
	"github.com/mleroux/videogen-ms-go/internal/usecase/account"
	"github.com/mleroux/videogen-ms-go/internal/usecase/catalog"
	"github.com/mleroux/videogen-ms-go/internal/usecase/library"
	videoSvc "github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	gw := initGateway(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg, cfg.ArchiveBucket)

	genRepo := mariadb.NewGenerationRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache and task queue enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching and background tracking are disabled")
	}

	generateSvc := videoSvc.NewGenerator(gw, genRepo, dispatcher, db.NewUUID)
	r.Post("/videos", api.GenerateVideoHandler(generateSvc))

	listSvc := videoSvc.NewLister(gw)
	r.Get("/videos", api.ListVideosHandler(listSvc))

	statusSvc := videoSvc.NewStatusGetter(gw)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(api.WithVideoID()).
		Get("/videos/{videoID}", api.GetVideoStatusHandler(rendererSvc, statusSvc))

	avatarSvc := catalog.NewAvatarCatalog(gw)
	r.Get("/avatars", api.ListAvatarsHandler(avatarSvc))
	r.Get("/avatars/{avatarID}", api.GetAvatarDetailsHandler(avatarSvc))
	r.Get("/avatar-groups", api.ListAvatarGroupsHandler(avatarSvc))
	r.Get("/avatar-groups/{groupID}/avatars", api.ListAvatarsInGroupHandler(avatarSvc))

	voiceSvc := catalog.NewVoiceCatalog(gw)
	r.Get("/voices", api.ListVoicesHandler(voiceSvc))

	templateSvc := catalog.NewTemplateCatalog(gw)
	r.Get("/templates", api.ListTemplatesHandler(templateSvc))
	r.Get("/templates/{templateID}", api.GetTemplateDetailsHandler(templateSvc))

	templateGenSvc := videoSvc.NewTemplateGenerator(gw, genRepo, dispatcher, db.NewUUID)
	r.Post("/templates/{templateID}/generate", api.GenerateFromTemplateHandler(templateGenSvc))

	assetSvc := library.NewAssetLibrary(gw)
	r.Post("/assets", api.UploadAssetHandler(assetSvc))
	r.Get("/assets", api.ListAssetsHandler(assetSvc))
	r.Delete("/assets/{assetID}", api.DeleteAssetHandler(assetSvc))

	folderSvc := library.NewFolderLibrary(gw)
	r.Get("/folders", api.ListFoldersHandler(folderSvc))
	r.Post("/folders", api.CreateFolderHandler(folderSvc))
	r.Post("/folders/{folderID}", api.RenameFolderHandler(folderSvc))
	r.Post("/folders/{folderID}/trash", api.TrashFolderHandler(folderSvc))
	r.Post("/folders/{folderID}/restore", api.RestoreFolderHandler(folderSvc))

	accountSvc := account.NewAccountInfo(gw)
	r.Get("/me", api.GetUserInfoHandler(accountSvc))
	r.Get("/credits", api.GetRemainingCreditsHandler(accountSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initGateway(ctx context.Context, cfg *config.Settings) port.Gateway {
	gw, err := heygen.New(heygen.Config{
		APIKey:    cfg.HeyGenAPIKey,
		BaseURL:   cfg.HeyGenBaseURL,
		UploadURL: cfg.HeyGenUploadURL,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize provider gateway: %v", err)
		os.Exit(1)
	}

	return gw
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithCoreAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
