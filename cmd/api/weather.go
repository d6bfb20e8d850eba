package main

import (
	"errors"
	"net/http"

	"gridcast/internal/weather"

	"github.com/gin-gonic/gin"
)

// GeocodeInput defines the query parameters for the geocode endpoint
type GeocodeInput struct {
	City string `form:"city" binding:"required"` // Free-text place name
}

// CoordinateInput defines the query parameters for coordinate-keyed
// endpoints. Pointers let "required" mean "param present": 0 is a valid
// latitude and longitude.
type CoordinateInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// GeocodeResponse is the payload of a successful geocode lookup
type GeocodeResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// AlertsResponse is the payload of a successful alerts lookup
type AlertsResponse struct {
	Count  int             `json:"count"`
	Alerts []weather.Alert `json:"alerts"`
}

// handleGeocodeCity godoc
// @Summary Geocode a city name
// @Description Resolve a free-text city name to coordinates and a display name
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(Portland, Oregon)
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather/geocode [get]
func (app *App) handleGeocodeCity(c *gin.Context) {
	var input GeocodeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := app.weatherService.LookupLocation(c.Request.Context(), input.City)
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Latitude:    location.Coordinate.Latitude,
		Longitude:   location.Coordinate.Longitude,
		DisplayName: location.Name,
	})
}

// handleGetForecast godoc
// @Summary Get a weather forecast
// @Description Retrieve daily and hourly forecast periods plus active alerts for a coordinate
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(25.77)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-80.19)
// @Success 200 {object} weather.Bundle
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather/forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	var input CoordinateInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bundle, err := app.weatherService.LookupForecast(c.Request.Context(),
		weather.NewCoordinate(*input.Latitude, *input.Longitude))
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// handleGetAlerts godoc
// @Summary Get active weather alerts
// @Description Retrieve active alerts for a coordinate, ordered by severity
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(25.77)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-80.19)
// @Success 200 {object} AlertsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather/alerts [get]
func (app *App) handleGetAlerts(c *gin.Context) {
	var input CoordinateInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alerts, err := app.weatherService.LookupAlerts(c.Request.Context(),
		weather.NewCoordinate(*input.Latitude, *input.Longitude))
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AlertsResponse{
		Count:  len(alerts),
		Alerts: alerts,
	})
}

// writeError maps pipeline failure kinds onto HTTP status codes so callers
// can tell an uncovered coordinate from a network problem.
func (app *App) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, weather.ErrCityRequired),
		errors.Is(err, weather.ErrInvalidLatitude),
		errors.Is(err, weather.ErrInvalidLongitude):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, weather.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, weather.ErrOutOfCoverage):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "location not covered by the National Weather Service; only US territories are supported",
		})
	case errors.Is(err, weather.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "upstream weather service timed out"})
	case errors.Is(err, weather.ErrUpstream), errors.Is(err, weather.ErrBadPayload):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream weather service failed"})
	default:
		app.logger.Error("unhandled lookup error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
