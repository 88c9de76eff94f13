package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// handleError maps application errors to HTTP responses. Upstream details
// stay in the logs; clients get the same generic message the dashboard shows.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var validationErrs validator.ValidationErrors

	if stderrors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request: " + validationErrs.Error(),
			Code:  errorspkg.ValidationError.String(),
		})
		return
	}

	if !stderrors.As(err, &appErr) {
		s.logError(c, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
			Code:  errorspkg.ErrorTypeUnknown.String(),
		})
		return
	}

	var statusCode int
	var message string
	switch {
	case appErr.Type == errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case appErr.Type == errorspkg.LocationNotFoundError:
		// the code tells it apart; the message stays the generic one
		statusCode = http.StatusNotFound
		message = dashboard.MessageSearchFailed
	case appErr.Type == errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case appErr.Type.IsUpstream():
		statusCode = http.StatusBadGateway
		message = dashboard.MessageSearchFailed
	case appErr.Type == errorspkg.SessionError:
		statusCode = http.StatusServiceUnavailable
		message = "Session storage unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		s.logError(c, err)
	}
	c.JSON(statusCode, ErrorResponse{Error: message, Code: appErr.Type.String()})
}

func (s *HTTPServerAdapter) logError(c *gin.Context, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("Request failed",
		ports.F("path", c.Request.URL.Path),
		ports.F("error", err.Error()))
}
