package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/wastemap/collection-api/docs"
	"github.com/wastemap/collection-api/internal/api/handler"
	"github.com/wastemap/collection-api/internal/api/middleware"
	"github.com/wastemap/collection-api/internal/core/domain"
	"github.com/wastemap/collection-api/internal/core/service"
	"github.com/wastemap/collection-api/internal/infrastructure/config"
	mongodb "github.com/wastemap/collection-api/internal/infrastructure/db/mongo"
	redisdb "github.com/wastemap/collection-api/internal/infrastructure/db/redis"
	"github.com/wastemap/collection-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsProduction())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("wastemap"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	statsCache := redisdb.NewStatsCache(rdb, cfg.StatsCacheTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 0)
	requestService := service.NewRequestService(requestRepo, userRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	requestHandler := handler.NewRequestHandler(requestService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Request routes ---
	requests := e.Group("/api/v1/requests", authMiddleware)
	requests.GET("/stats", requestHandler.Stats, adminOnly)
	requests.POST("", requestHandler.Create)
	requests.GET("", requestHandler.List)
	requests.GET("/:id", requestHandler.Get)
	requests.PUT("/:id", requestHandler.Update)
	requests.PATCH("/:id/status", requestHandler.TransitionStatus, adminOnly)
	requests.DELETE("/:id", requestHandler.Delete)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
