package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Screen endpoints
	app.router.GET("/screen", app.handleGetScreen)
	app.router.GET("/screen/state", app.handleGetScreenState)
	app.router.POST("/screen/retry", app.handleRetry)
	app.router.POST("/screen/toggle", app.handleToggle)

	// Alarm endpoints
	app.router.GET("/alarm", app.handleGetAlarm)
	app.router.POST("/alarm", app.handleArmAlarm)
	app.router.DELETE("/alarm", app.handleDisarmAlarm)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.gatherer, promhttp.HandlerOpts{})))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
