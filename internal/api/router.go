package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tasknest/todo-system/docs"
	"github.com/tasknest/todo-system/internal/api/handler"
	"github.com/tasknest/todo-system/internal/api/middleware"
	"github.com/tasknest/todo-system/internal/core/service"
	mongodb "github.com/tasknest/todo-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tasknest/todo-system/internal/infrastructure/db/redis"
	"github.com/tasknest/todo-system/internal/pkg/config"
	"github.com/tasknest/todo-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)

	authService := service.NewAuthService(userRepo, cfg.BcryptCost, log)
	sessionService := service.NewSessionService(sessionRepo, cfg.Session.TTL, log)
	todoService := service.NewTodoService(todoRepo, log)
	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	authHandler := handler.NewAuthHandler(authService, sessionService, cfg.Session.CookieName)
	sessionHandler := handler.NewSessionHandler(sessionService, cfg.Session.CookieName)
	todoHandler := handler.NewTodoHandler(todoService)
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, rdb)

	sessionGate := middleware.Session(sessionService, cfg.Session.CookieName)
	rateLimit := middleware.RateLimit(limiter)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "tasknest todo api"})
	})
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginPrompt)
	e.POST("/login", authHandler.Login)

	// --- Health probes, metrics, docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Session-gated routes ---
	authed := e.Group("", sessionGate)
	authed.GET("/dashboard", sessionHandler.Dashboard)
	authed.POST("/logout", sessionHandler.Logout)
	authed.POST("/logout-all", sessionHandler.LogoutAll)

	// --- Todos: gated, mutations also rate-limited ---
	todos := e.Group("/v1/todos", sessionGate)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create, rateLimit)
	todos.PUT("/:id", todoHandler.Update, rateLimit)
	todos.DELETE("/:id", todoHandler.Delete, rateLimit)

	return e
}
