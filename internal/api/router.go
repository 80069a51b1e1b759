package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spaceshare/rental-api/internal/api/handler"
	"github.com/spaceshare/rental-api/internal/api/middleware"
	"github.com/spaceshare/rental-api/internal/core/domain"
	"github.com/spaceshare/rental-api/internal/core/service"
	mongodb "github.com/spaceshare/rental-api/internal/infrastructure/db/mongo"
	rediscache "github.com/spaceshare/rental-api/internal/infrastructure/db/redis"
	"github.com/spaceshare/rental-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	spaceRepo := mongodb.NewSpaceRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	cache := rediscache.NewCache(rdb)

	spaceService := service.NewSpaceService(spaceRepo, cache, cfg.CacheTTL, log)
	bookingService := service.NewBookingService(bookingRepo, spaceRepo, log)
	reviewService := service.NewReviewService(reviewRepo, spaceRepo, bookingRepo, log)
	userService := service.NewUserService(userRepo, cfg.JWTSecret, 24*time.Hour, log)

	spaceHandler := handler.NewSpaceHandler(spaceService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Accounts ---
	api.POST("/users", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	// Privileged account creation: same handler, but the super_admin role
	// from the token lets the service grant elevated roles.
	api.POST("/admin/users", userHandler.Register, auth, middleware.RBAC(domain.RoleSuperAdmin))

	// --- Spaces: reads are public, mutations are admin-only ---
	api.GET("/spaces", spaceHandler.List)
	api.GET("/spaces/:id", spaceHandler.Get)
	api.POST("/spaces", spaceHandler.Create, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin))
	api.PUT("/spaces/:id", spaceHandler.Update, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin))
	api.DELETE("/spaces/:id", spaceHandler.Delete, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin))

	// --- Bookings: always scoped to the authenticated caller ---
	api.GET("/bookings", bookingHandler.List, auth)
	api.POST("/bookings", bookingHandler.Create, auth)
	api.GET("/bookings/:id", bookingHandler.Get, auth)
	api.PUT("/bookings/:id", bookingHandler.Update, auth)
	api.POST("/bookings/:id/pay", bookingHandler.Pay, auth)
	api.POST("/bookings/:id/cancel", bookingHandler.Cancel, auth)

	// --- Reviews: reads are public, writing requires a confirmed stay ---
	api.GET("/reviews", reviewHandler.List)
	api.POST("/reviews", reviewHandler.Create, auth)

	return e
}
