package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	contentHandler *handler.ContentHandler,
	userHandler *handler.UserHandler,
	uploadHandler *handler.UploadHandler,
	secureHandler *handler.SecureHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Watermarked previews are the only statically served assets.
	e.Static("/thumbnails", cfg.ThumbnailsDir)

	// 100 requests per 15 minutes per IP, like the other site deployments.
	limiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(100.0 / (15 * 60)),
			Burst:     100,
			ExpiresIn: 15 * time.Minute,
		}),
	})

	api := e.Group("/api", limiter)

	// Public routes
	api.GET("/projects", projectHandler.ListPublic)
	api.GET("/projects/:id", projectHandler.GetPublic)
	api.GET("/content", contentHandler.GetPublicSite)
	api.POST("/auth/login", authHandler.Login)

	// Signed URLs are self-authorizing; no bearer token here.
	api.GET("/secure/*", secureHandler.ServeFile)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/password", authHandler.SetPassword)

	// Role-gated admin surface
	admin := secured.Group("/admin")

	editor := admin.Group("", auth.RequireRole(auth.RoleEditor))
	editor.GET("/projects", projectHandler.List)
	editor.POST("/projects", projectHandler.Create)
	editor.PUT("/projects/:id", projectHandler.Update)
	editor.POST("/upload", uploadHandler.UploadMedia)
	editor.POST("/generate-download-url", secureHandler.GenerateDownloadURL)
	editor.GET("/content", contentHandler.GetContent)
	editor.PUT("/content", contentHandler.UpdateContent)

	adminOnly := admin.Group("", auth.RequireRole(auth.RoleAdmin))
	adminOnly.DELETE("/projects/:id", projectHandler.Delete)
	adminOnly.POST("/upload-cv", uploadHandler.UploadCV)
	adminOnly.GET("/settings", contentHandler.GetSettings)
	adminOnly.PUT("/settings", contentHandler.UpdateSettings)

	owner := admin.Group("", auth.RequireRole(auth.RoleOwner))
	owner.GET("/users", userHandler.ListUsers)
	owner.PUT("/users/:email/role", userHandler.UpdateRole)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
