package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/classhub/classhub-api/docs"
	"github.com/classhub/classhub-api/internal/api/handler"
	"github.com/classhub/classhub-api/internal/api/middleware"
	"github.com/classhub/classhub-api/internal/core/domain"
	"github.com/classhub/classhub-api/internal/core/ports"
	"github.com/classhub/classhub-api/internal/core/service"
	"github.com/classhub/classhub-api/internal/infrastructure/db/postgres"
	redisdb "github.com/classhub/classhub-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. rdb may
// be nil; the snippet listing then skips the cache.
func NewRouter(db *sql.DB, rdb *redis.Client, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("classhub"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	snippetRepo := postgres.NewSnippetRepository(db)

	var cache ports.SnippetCache
	if rdb != nil {
		cache = redisdb.NewSnippetCache(rdb)
	}

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)
	snippetService := service.NewSnippetService(snippetRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	snippetHandler := handler.NewSnippetHandler(snippetService)

	auth := middleware.Auth(tokens)
	studentOnly := middleware.RBAC(domain.RoleStudent)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyWriter := middleware.RBAC(domain.RoleStudent, domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Student profile ---
	e.GET("/profile", userHandler.Profile, auth, studentOnly)
	e.PUT("/profile", userHandler.UpdateProfile, auth, studentOnly)

	// --- Admin user panel ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.POST("/users", userHandler.Create, auth, adminOnly)
	e.PUT("/user/:id/role", userHandler.UpdateRole, auth, adminOnly)
	e.DELETE("/user/:id", userHandler.Delete, auth, adminOnly)

	// --- Snippets ---
	e.POST("/snippets", snippetHandler.Create, auth, anyWriter)
	e.GET("/snippets", snippetHandler.List)
	e.PUT("/snippets/:id", snippetHandler.Update, auth, anyWriter)
	e.DELETE("/snippets/:id", snippetHandler.Delete, auth, anyWriter)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
