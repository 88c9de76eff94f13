package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/pkg/errors"
)

// showDashboard handles GET / by rendering the session's dashboard
func (s *HTTPServerAdapter) showDashboard(c *gin.Context) {
	state, err := s.dashboardUseCase.State(c.Request.Context(), sessionID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", newPageView(state))
}

// getDashboard handles GET /api/dashboard
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	state, err := s.dashboardUseCase.State(c.Request.Context(), sessionID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDashboardResponse(state))
}

// search handles POST /search. Lookup failures end up in the session state,
// so only session store failures surface as HTTP errors.
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBind(&form); err != nil {
		s.handleError(c, err)
		return
	}

	if _, err := s.dashboardUseCase.Search(c.Request.Context(), sessionID(c), form.Query); err != nil {
		s.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// locate handles POST /locate with coordinates or a geolocation failure reason
func (s *HTTPServerAdapter) locate(c *gin.Context) {
	var form locateForm
	if err := c.ShouldBind(&form); err != nil {
		s.handleError(c, err)
		return
	}

	request, err := form.request()
	if err != nil {
		s.handleError(c, errors.NewValidationError("coordinates must be decimal degrees"))
		return
	}

	if _, err := s.dashboardUseCase.Locate(c.Request.Context(), sessionID(c), request); err != nil {
		s.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// toggleTheme handles POST /theme
func (s *HTTPServerAdapter) toggleTheme(c *gin.Context) {
	if _, err := s.dashboardUseCase.ToggleTheme(c.Request.Context(), sessionID(c)); err != nil {
		s.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
