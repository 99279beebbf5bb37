package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwellhq/blog-api/internal/api/handler"
	"github.com/inkwellhq/blog-api/internal/api/middleware"
	"github.com/inkwellhq/blog-api/internal/core/service"
	mongodb "github.com/inkwellhq/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwellhq/blog-api/internal/infrastructure/db/redis"
	"github.com/inkwellhq/blog-api/internal/infrastructure/security"
)

// Options carries the wiring parameters for the router.
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	Log        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. Dependencies
// are wired with explicit constructors, interface-typed collaborators flowing
// inward.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	hasher := security.NewBcryptHasher(opts.BcryptCost)
	tokens := security.NewJWTTokenService(opts.JWTSecret, opts.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	postCache := redisdb.NewPostCache(rdb)

	authService := service.NewAuthService(userRepo, hasher, tokens, opts.Log)
	postService := service.NewPostService(postRepo, postCache, opts.Log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Post routes: reads are public, mutations sit behind the token gate ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create, authRequired)
	e.PUT("/posts/:id", postHandler.Update, authRequired)
	e.DELETE("/posts/:id", postHandler.Delete, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
