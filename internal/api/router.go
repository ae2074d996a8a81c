package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/pawprint/cattery-api/docs"
	"github.com/pawprint/cattery-api/internal/api/handler"
	"github.com/pawprint/cattery-api/internal/api/middleware"
	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/service"
	"github.com/pawprint/cattery-api/internal/infrastructure/config"
	pgdb "github.com/pawprint/cattery-api/internal/infrastructure/db/postgres"
	redisdb "github.com/pawprint/cattery-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cattery"))

	// --- Dependencies ---
	userRepo := pgdb.NewUserRepository(db)
	catRepo := pgdb.NewCatRepository(db)
	breedRepo := pgdb.NewBreedRepository(db)
	clientRepo := pgdb.NewClientRepository(db)

	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, codec, throttle, log)
	catService := service.NewCatService(catRepo, breedRepo, log)
	breedService := service.NewBreedService(breedRepo, log)
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	catHandler := handler.NewCatHandler(catService)
	breedHandler := handler.NewBreedHandler(breedService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)

	auth := middleware.Auth(codec, userRepo)
	optionalAuth := middleware.OptionalAuth(codec, userRepo)
	requireUser := middleware.RequireRole(domain.RoleUser)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	// Registration is public, but an authenticated admin on the same
	// route may mint admin accounts, so the guard runs when a bearer
	// token is offered.
	e.POST("/auth/register", authHandler.Register, optionalAuth)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, auth, requireUser)

	// --- Cats: authenticated CRUD, ownership enforced in the service ---
	cats := e.Group("/cats", auth, requireUser)
	cats.POST("", catHandler.Create)
	cats.GET("", catHandler.List)
	cats.GET("/:id", catHandler.Get)
	cats.PATCH("/:id", catHandler.Update)
	cats.DELETE("/:id", catHandler.Delete)

	// --- Breeds: reads for any user, mutations admin-only ---
	breeds := e.Group("/breeds", auth)
	breeds.GET("", breedHandler.List, requireUser)
	breeds.GET("/:id", breedHandler.Get, requireUser)
	breeds.POST("", breedHandler.Create, requireAdmin)
	breeds.PATCH("/:id", breedHandler.Update, requireAdmin)
	breeds.DELETE("/:id", breedHandler.Delete, requireAdmin)

	// --- Users: admin listing; self-or-admin mutation ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, requireAdmin)
	users.GET("/:id", userHandler.Get, requireAdmin)
	users.PATCH("/:id", userHandler.Update, requireUser)
	users.DELETE("/:id", userHandler.Delete, requireUser)

	// --- Clients: authenticated CRUD, ownership enforced in the service ---
	clients := e.Group("/clients", auth, requireUser)
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.PATCH("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
