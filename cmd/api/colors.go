package main

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AreaColorInput defines the query parameters for the area color endpoint
type AreaColorInput struct {
	Area *float64 `form:"area" binding:"required"` // Area in square meters
}

// AreaColorResponse is the ramp entry chosen for an area
type AreaColorResponse struct {
	Area      float64 `json:"area" example:"1e13"`
	RampIndex int     `json:"ramp_index" example:"35"`
	Color     string  `json:"color" example:"#e6d200"`
}

// ColorRampResponse describes the configured ramp
type ColorRampResponse struct {
	Colormap string   `json:"colormap" example:"blackbody"`
	Min      float64  `json:"min" example:"1e8"`
	Max      float64  `json:"max" example:"2e13"`
	Steps    int      `json:"steps" example:"50"`
	Colors   []string `json:"colors"`
}

// handleAreaColor godoc
// @Summary Color for an area
// @Description Map an area in square meters to the ramp color used for features of that size
// @Tags colors
// @Produce json
// @Param area query number true "Area in square meters" example(10000000000000)
// @Success 200 {object} AreaColorResponse
// @Failure 400 {object} map[string]string
// @Router /colors/area [get]
func (app *App) handleAreaColor(c *gin.Context) {
	var input AreaColorInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := *input.Area
	index := app.mapper.Index(area)

	// NaN and infinities cannot be encoded as JSON numbers
	if math.IsNaN(area) {
		area = 0
	} else if math.IsInf(area, 0) {
		area = math.Copysign(math.MaxFloat64, area)
	}

	c.JSON(http.StatusOK, AreaColorResponse{
		Area:      area,
		RampIndex: index,
		Color:     app.mapper.Ramp().At(index).Hex(),
	})
}

// handleColorRamp godoc
// @Summary Color ramp
// @Description Return the configured colormap, area range and every ramp color
// @Tags colors
// @Produce json
// @Success 200 {object} ColorRampResponse
// @Router /colors/ramp [get]
func (app *App) handleColorRamp(c *gin.Context) {
	cfg := app.mapper.Config()
	ramp := app.mapper.Ramp()

	c.JSON(http.StatusOK, ColorRampResponse{
		Colormap: ramp.Name(),
		Min:      cfg.Min,
		Max:      cfg.Max,
		Steps:    cfg.Steps,
		Colors:   ramp.Hex(),
	})
}
