package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "sessionID"

// sessionMiddleware attaches the dashboard session id, issuing a cookie when
// the request has none or carries something that is not a UUID.
func (s *HTTPServerAdapter) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(s.session.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		// refreshed on every request
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(s.session.CookieName, id, int(s.session.TTL.Seconds()), "/", "", s.session.Secure, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
