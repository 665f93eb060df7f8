package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"areamap/internal/features"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
)

// maxImportBytes caps dropped files
const maxImportBytes = 32 << 20

// GeometryRequest carries a drawn or modified geometry
type GeometryRequest struct {
	Geometry json.RawMessage `json:"geometry" binding:"required" swaggertype:"object"` // GeoJSON geometry
	CRS      string          `json:"crs" example:"EPSG:3857"`                         // Projection of the coordinates, EPSG:4326 when empty
}

// FeatureListResponse is the current vector layer
type FeatureListResponse struct {
	Count    int             `json:"count" example:"2"`
	Features []features.View `json:"features"`
}

// FeatureAtInput defines the query parameters for the hover lookup
type FeatureAtInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// DownloadLinkResponse holds the layer as a data URL
type DownloadLinkResponse struct {
	Href     string `json:"href" example:"data:text/json;charset=utf-8,%7B%22type%22:%22FeatureCollection%22,%22features%22:%5B%5D%7D"`
	Download string `json:"download" example:"features.json"`
}

// handleListFeatures godoc
// @Summary List features
// @Description Return every feature of the vector layer with its area based style
// @Tags features
// @Produce json
// @Success 200 {object} FeatureListResponse
// @Router /features [get]
func (app *App) handleListFeatures(c *gin.Context) {
	views := app.featureService.List()
	c.JSON(http.StatusOK, FeatureListResponse{Count: len(views), Features: views})
}

// handleGetFeature godoc
// @Summary Get a feature
// @Tags features
// @Produce json
// @Param id path string true "Feature identifier"
// @Success 200 {object} features.View
// @Failure 404 {object} map[string]string
// @Router /features/{id} [get]
func (app *App) handleGetFeature(c *gin.Context) {
	view, err := app.featureService.Get(c.Param("id"))
	if err != nil {
		app.featureError(c, err, "failed to get feature")
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleDrawFeature godoc
// @Summary Draw a polygon
// @Description Add a drawn polygon to the layer. Open rings are closed.
// @Tags features
// @Accept json
// @Produce json
// @Param request body GeometryRequest true "Polygon geometry"
// @Success 201 {object} features.View
// @Failure 400 {object} map[string]string
// @Router /features [post]
func (app *App) handleDrawFeature(c *gin.Context) {
	req, ok := app.bindGeometry(c)
	if !ok {
		return
	}

	view, err := app.featureService.Draw(req.geometry.Geometry(), req.crs)
	if err != nil {
		app.featureError(c, err, "failed to draw feature")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// handleModifyFeature godoc
// @Summary Modify a feature
// @Description Replace the geometry of a feature and recompute its color
// @Tags features
// @Accept json
// @Produce json
// @Param id path string true "Feature identifier"
// @Param request body GeometryRequest true "New geometry"
// @Success 200 {object} features.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /features/{id} [put]
func (app *App) handleModifyFeature(c *gin.Context) {
	req, ok := app.bindGeometry(c)
	if !ok {
		return
	}

	view, err := app.featureService.Modify(c.Param("id"), req.geometry.Geometry(), req.crs)
	if err != nil {
		app.featureError(c, err, "failed to modify feature")
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleRemoveFeature godoc
// @Summary Remove a feature
// @Tags features
// @Param id path string true "Feature identifier"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /features/{id} [delete]
func (app *App) handleRemoveFeature(c *gin.Context) {
	if err := app.featureService.Remove(c.Param("id")); err != nil {
		app.featureError(c, err, "failed to remove feature")
		return
	}
	c.Status(http.StatusNoContent)
}

// handleClearFeatures godoc
// @Summary Clear the layer
// @Description Remove every feature, as before dropping a new file
// @Tags features
// @Success 204
// @Router /features [delete]
func (app *App) handleClearFeatures(c *gin.Context) {
	app.featureService.Clear()
	c.Status(http.StatusNoContent)
}

// handleImportFeatures godoc
// @Summary Import a map file
// @Description Read a GeoJSON or KML file, either as multipart field "file" or as the raw request body
// @Tags features
// @Accept mpfd
// @Accept octet-stream
// @Produce json
// @Param file formData file false "GeoJSON or KML file"
// @Param filename query string false "File name when sending a raw body" example(zones.kml)
// @Success 201 {object} FeatureListResponse
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /features/import [post]
func (app *App) handleImportFeatures(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	filename, data, err := readUpload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := app.featureService.Import(filename, data)
	if err != nil {
		app.featureError(c, err, "failed to import features")
		return
	}
	c.JSON(http.StatusCreated, FeatureListResponse{Count: len(views), Features: views})
}

// handleFeatureAt godoc
// @Summary Feature under a point
// @Description Return the topmost polygonal feature containing the coordinate
// @Tags features
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(39.11539)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-107.65840)
// @Success 200 {object} features.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /features/at [get]
func (app *App) handleFeatureAt(c *gin.Context) {
	var input FeatureAtInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := app.featureService.FeatureAt(*input.Longitude, *input.Latitude)
	if err != nil {
		app.featureError(c, err, "failed to look up feature")
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleExportFeatures godoc
// @Summary Export the layer
// @Tags features
// @Produce json
// @Produce application/vnd.google-earth.kml+xml
// @Param format query string false "geojson or kml" Enums(geojson, kml) default(geojson)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /features/export [get]
func (app *App) handleExportFeatures(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "geojson"))

	data, err := app.featureService.Export(format)
	if err != nil {
		app.featureError(c, err, "failed to export features")
		return
	}

	contentType, filename := "application/geo+json", "features.json"
	if format == "kml" {
		contentType, filename = "application/vnd.google-earth.kml+xml", "features.kml"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// handleDownloadLink godoc
// @Summary Download link
// @Description Return the current layer as a data URL, refreshed on every change
// @Tags features
// @Produce json
// @Success 200 {object} DownloadLinkResponse
// @Router /features/download-link [get]
func (app *App) handleDownloadLink(c *gin.Context) {
	c.JSON(http.StatusOK, DownloadLinkResponse{
		Href:     app.featureService.DownloadHref(),
		Download: "features.json",
	})
}

type parsedGeometry struct {
	geometry *geojson.Geometry
	crs      string
}

func (app *App) bindGeometry(c *gin.Context) (parsedGeometry, bool) {
	var req GeometryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return parsedGeometry{}, false
	}

	g, err := geojson.UnmarshalGeometry(req.Geometry)
	if err != nil || g.Geometry() == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "geometry must be a GeoJSON geometry"})
		return parsedGeometry{}, false
	}
	return parsedGeometry{geometry: g, crs: req.CRS}, true
}

// readUpload returns the multipart "file" field, or the raw body named by the filename query
func readUpload(c *gin.Context) (string, []byte, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		f, err := header.Open()
		if err != nil {
			return "", nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		return header.Filename, data, err
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", nil, err
	}
	if len(data) == 0 {
		return "", nil, errors.New("empty request body")
	}
	return c.DefaultQuery("filename", "upload"), data, nil
}

func (app *App) featureError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, features.ErrFeatureNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, features.ErrInvalidGeometry),
		errors.Is(err, features.ErrUnsupportedFormat),
		errors.Is(err, features.ErrNoFeatures):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		app.logger.Error(msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
