package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "portfolio/docs" // swagger docs

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/media"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/store"
)

// @title Portfolio API
// @version 1.0
// @description Portfolio backend with role-gated content management, uploads and signed download URLs.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(st)
	projectRepo := repository.NewProjectRepository(st)
	settingsRepo := repository.NewSettingsRepository(st)
	contentRepo := repository.NewContentRepository(st)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	urlSigner := auth.NewURLSigner(cfg.HMACSecret)

	// Initialize services
	uploadService, err := service.NewUploadService(cfg.SecureDir, cfg.ThumbnailsDir, media.NewThumbnailer())
	if err != nil {
		log.Fatalf("upload init: %v", err)
	}
	authService := service.NewAuthService(userRepo, jwtService, cfg.OwnerEmail)
	userService := service.NewUserService(userRepo, cfg.OwnerEmail)
	projectService := service.NewProjectService(projectRepo, uploadService, cacheClient)
	contentService := service.NewContentService(contentRepo, settingsRepo, cacheClient)
	downloadService := service.NewDownloadService(urlSigner, cfg.SecureDir, cfg.MediaURLTTL, cfg.CVURLTTL)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	contentHandler := handler.NewContentHandler(contentService)
	userHandler := handler.NewUserHandler(userService)
	uploadHandler := handler.NewUploadHandler(uploadService, contentService)
	secureHandler := handler.NewSecureHandler(downloadService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		projectHandler,
		contentHandler,
		userHandler,
		uploadHandler,
		secureHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		log.Printf("using sqlite store at %s", cfg.SQLitePath)
		return store.NewSQLiteStore(cfg.SQLitePath)
	default:
		log.Printf("using file store in %s", cfg.DataDir)
		return store.NewFileStore(cfg.DataDir)
	}
}
