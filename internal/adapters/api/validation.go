package api

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/internal/core/dashboard"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidations adds the custom tags used by form and query bindings
func registerValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("geoerror", validateGeolocationFailure)
	})
	return registerErr
}

// validateGeolocationFailure accepts the failure reasons the dashboard script reports
func validateGeolocationFailure(fl validator.FieldLevel) bool {
	switch dashboard.GeolocationFailure(fl.Field().String()) {
	case dashboard.GeolocationUnavailable, dashboard.GeolocationDenied:
		return true
	default:
		return false
	}
}

// searchForm is posted by the dashboard search box. A blank query is allowed.
type searchForm struct {
	Query string `form:"q"`
}

// locateForm carries either device coordinates or the reason they are missing
type locateForm struct {
	Latitude  string `form:"lat" binding:"required_without=Error,omitempty,latitude"`
	Longitude string `form:"lon" binding:"required_without=Error,omitempty,longitude"`
	Error     string `form:"error" binding:"omitempty,geoerror"`
}

func (f *locateForm) request() (dashboard.LocateRequest, error) {
	if f.Error != "" {
		return dashboard.LocateRequest{Failure: dashboard.GeolocationFailure(f.Error)}, nil
	}
	lat, err := strconv.ParseFloat(f.Latitude, 64)
	if err != nil {
		return dashboard.LocateRequest{}, err
	}
	lon, err := strconv.ParseFloat(f.Longitude, 64)
	if err != nil {
		return dashboard.LocateRequest{}, err
	}
	return dashboard.LocateRequest{Latitude: lat, Longitude: lon}, nil
}

type cityQuery struct {
	City string `form:"city" binding:"required"`
}

type coordinatesQuery struct {
	Latitude  string `form:"lat" binding:"required,latitude"`
	Longitude string `form:"lon" binding:"required,longitude"`
}

func (q *coordinatesQuery) coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(q.Latitude, 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(q.Longitude, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
