package main

import (
	"context"
	"net/http"
	"time"

	"realestate-valley/internal/middleware"
	"realestate-valley/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupAPIRoutes()
}

// setupOperationalRoutes configures health and metrics endpoints
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.Router.GET("/health", func(c *gin.Context) {
		if a.redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()

			if err := cache.Ping(ctx, a.redisClient); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"service_key": a.molitClient.HasServiceKey(),
		})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	{
		api.GET("/apt-trade", a.TransactionHandler.GetAptTrade)
		api.GET("/series", a.SeriesHandler.GetSeries)
		api.GET("/forecast", a.SeriesHandler.GetForecast)
		api.GET("/regions", a.RegionHandler.ListRegions)
		api.GET("/zones", a.RegionHandler.ListZones)
		api.GET("/zones/:zone/series", a.SeriesHandler.GetZoneSeries)
	}
}
