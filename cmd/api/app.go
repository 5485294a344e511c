package main

import (
	"context"
	"net/http"
	"time"

	"realestate-valley/internal/handlers"
	"realestate-valley/internal/middleware"
	"realestate-valley/internal/repositories"
	"realestate-valley/internal/services"
	"realestate-valley/internal/transformers"
	"realestate-valley/internal/utils"
	"realestate-valley/internal/validators"
	"realestate-valley/pkg/cache"
	"realestate-valley/pkg/config"
	"realestate-valley/pkg/logger"
	"realestate-valley/pkg/metrics"
	"realestate-valley/pkg/molit"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config             *config.Config
	Router             *gin.Engine
	TransactionHandler *handlers.TransactionHandler
	SeriesHandler      *handlers.SeriesHandler
	RegionHandler      *handlers.RegionHandler
	RateLimiter        *middleware.RateLimiter
	Server             *http.Server

	redisClient      *redis.Client
	molitClient      *molit.Client
	transactionCache repositories.TransactionCache
	stopBackground   context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Initialize infrastructure
	if err := app.initializeCache(); err != nil {
		return nil, err
	}
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app, nil
}

// initialize the period cache, with a Redis tier when enabled
func (a *App) initializeCache() error {
	memory, err := repositories.NewMemoryTransactionCache(a.Config.Cache.Capacity, a.Config.Cache.OpenPeriodTTL)
	if err != nil {
		return utils.WrapError(err, "failed to create memory cache (capacity=%d)", a.Config.Cache.Capacity)
	}
	tiers := []repositories.TransactionCache{memory}

	if a.Config.Redis.Enabled {
		client, err := cache.NewRedisClient(a.Config.Redis)
		if err != nil {
			return utils.WrapError(err, "failed to initialize Redis tier at %s:%d", a.Config.Redis.Host, a.Config.Redis.Port)
		}
		a.redisClient = client
		tiers = append(tiers, repositories.NewRedisTransactionCache(client))
	}

	policy := services.PeriodExpirationPolicy(a.Config.Cache.OpenPeriodTTL, time.Now)
	a.transactionCache = repositories.NewTieredTransactionCache(policy, tiers...)
	return nil
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	perSecond := rate.Limit(a.Config.RateLimit.RequestsPerMinute / 60.0)
	a.RateLimiter = middleware.NewRateLimiter(perSecond, a.Config.RateLimit.Burst)

	ctx, cancel := context.WithCancel(context.Background())
	a.stopBackground = cancel
	go a.RateLimiter.Cleanup(ctx, 10*time.Minute)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// upstream
	a.molitClient = molit.NewClient(a.Config.Molit)
	if !a.molitClient.HasServiceKey() {
		logger.GlobalLogger.Warn("DATA_GO_KR_KEY is not set; transaction endpoints will answer with a configuration error")
	}

	// transformers
	parser := transformers.NewTradeFeedParser()
	aggregator := transformers.NewAggregateTransformer()

	// validators
	validator := validators.NewTransactionValidator(a.Config.Series.MaxMonths)

	// services
	transactionService := services.NewTransactionService(a.molitClient, parser)
	seriesService := services.NewSeriesService(
		transactionService,
		a.transactionCache,
		aggregator,
		services.WithConcurrency(a.Config.Series.Concurrency),
		services.WithOpenPeriodTTL(a.Config.Cache.OpenPeriodTTL),
	)
	forecastService := services.NewForecastService()

	// handlers
	a.TransactionHandler = handlers.NewTransactionHandler(transactionService, validator)
	a.SeriesHandler = handlers.NewSeriesHandler(seriesService, forecastService, validator, a.molitClient, a.Config.Series)
	a.RegionHandler = handlers.NewRegionHandler()
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.stopBackground != nil {
		a.stopBackground()
	}
	if a.redisClient != nil {
		cache.Close(a.redisClient)
	}
}
