package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Vector layer endpoints
	layer := app.router.Group("/features")
	layer.GET("", app.handleListFeatures)
	layer.POST("", app.handleDrawFeature)
	layer.DELETE("", app.handleClearFeatures)
	layer.POST("/import", app.handleImportFeatures)
	layer.GET("/at", app.handleFeatureAt)
	layer.GET("/export", app.handleExportFeatures)
	layer.GET("/download-link", app.handleDownloadLink)
	layer.GET("/:id", app.handleGetFeature)
	layer.PUT("/:id", app.handleModifyFeature)
	layer.DELETE("/:id", app.handleRemoveFeature)

	// Color ramp endpoints
	app.router.GET("/colors/area", app.handleAreaColor)
	app.router.GET("/colors/ramp", app.handleColorRamp)

	// Position endpoints
	position := app.router.Group("/position")
	position.GET("", app.handleGetPosition)
	position.POST("", app.handleUpdatePosition)
	position.POST("/error", app.handlePositionError)
	position.POST("/heading", app.handleSetHeading)
	position.GET("/extent", app.handleLocate)
	position.GET("/place", app.handlePlace)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
