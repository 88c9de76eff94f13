package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
)

// getWeather handles GET /api/weather?city=
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query cityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	bundle, err := s.weatherUseCase.SearchByName(c.Request.Context(), weather.SearchRequest{Query: query.City})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherResponse(bundle))
}

// getWeatherByCoordinates handles GET /api/weather/coordinates?lat=&lon=
func (s *HTTPServerAdapter) getWeatherByCoordinates(c *gin.Context) {
	var query coordinatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, err)
		return
	}

	lat, lon, err := query.coordinates()
	if err != nil {
		s.handleError(c, errors.NewValidationError("coordinates must be decimal degrees"))
		return
	}

	bundle, err := s.weatherUseCase.SearchByCoordinates(c.Request.Context(), weather.CoordinatesRequest{
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherResponse(bundle))
}
