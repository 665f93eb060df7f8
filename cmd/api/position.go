package main

import (
	"errors"
	"net/http"
	"time"

	"areamap/internal/geolocation"
	"areamap/internal/types"

	"github.com/gin-gonic/gin"
)

// PositionRequest is a reading from the device's geolocation sensor
type PositionRequest struct {
	Latitude  *float64  `json:"latitude" binding:"required" example:"39.11539"`  // Latitude in decimal degrees
	Longitude *float64  `json:"longitude" binding:"required" example:"-107.6584"` // Longitude in decimal degrees
	Accuracy  float64   `json:"accuracy" example:"25"`                            // Accuracy radius in meters
	Timestamp time.Time `json:"timestamp"`                                        // Time of the reading, now when omitted
}

// HeadingRequest is a compass reading
type HeadingRequest struct {
	Heading *float64 `json:"heading" binding:"required" example:"90"` // Degrees clockwise from north
}

// handleGetPosition godoc
// @Summary Position layer
// @Description Return the accuracy circle, position point, icon style, last error and local timezone
// @Tags position
// @Produce json
// @Success 200 {object} geolocation.State
// @Router /position [get]
func (app *App) handleGetPosition(c *gin.Context) {
	c.JSON(http.StatusOK, app.tracker.State())
}

// handleUpdatePosition godoc
// @Summary Report a position
// @Description Replace the position layer with a new reading
// @Tags position
// @Accept json
// @Produce json
// @Param request body PositionRequest true "Geolocation reading"
// @Success 200 {object} geolocation.State
// @Failure 400 {object} map[string]string
// @Router /position [post]
func (app *App) handleUpdatePosition(c *gin.Context) {
	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := app.tracker.Update(geolocation.Position{
		Coords:    types.NewCoords(*req.Latitude, *req.Longitude),
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, geolocation.ErrInvalidPosition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to update position", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update position"})
		return
	}

	c.JSON(http.StatusOK, app.tracker.State())
}

// handlePositionError godoc
// @Summary Report a geolocation error
// @Description Record a failed reading. The message is shown as an alert.
// @Tags position
// @Accept json
// @Produce json
// @Param request body geolocation.PositionError true "Geolocation error"
// @Success 200 {object} geolocation.State
// @Failure 400 {object} map[string]string
// @Router /position/error [post]
func (app *App) handlePositionError(c *gin.Context) {
	var perr geolocation.PositionError
	if err := c.ShouldBindJSON(&perr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app.tracker.ReportError(perr)
	c.JSON(http.StatusOK, app.tracker.State())
}

// handleSetHeading godoc
// @Summary Report a heading
// @Description Set the compass heading rotating the position icon
// @Tags position
// @Accept json
// @Produce json
// @Param request body HeadingRequest true "Compass heading"
// @Success 200 {object} geolocation.State
// @Failure 400 {object} map[string]string
// @Router /position/heading [post]
func (app *App) handleSetHeading(c *gin.Context) {
	var req HeadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := app.tracker.SetHeading(*req.Heading); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.tracker.State())
}

// handleLocate godoc
// @Summary Locate
// @Description Return the extent to fit the view on the position layer
// @Tags position
// @Produce json
// @Success 200 {object} geolocation.Fit
// @Failure 404 {object} map[string]string
// @Router /position/extent [get]
func (app *App) handleLocate(c *gin.Context) {
	fit, err := app.tracker.Locate()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fit)
}

// handlePlace godoc
// @Summary Place at the position
// @Description Reverse geocode the current position and look up its ground elevation
// @Tags position
// @Produce json
// @Success 200 {object} types.Place
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /position/place [get]
func (app *App) handlePlace(c *gin.Context) {
	place, err := app.tracker.Place(c.Request.Context())
	if err != nil {
		if errors.Is(err, geolocation.ErrNoPosition) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to resolve place", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve place"})
		return
	}
	c.JSON(http.StatusOK, place)
}
