package middleware

import (
	"net/http"
	"strings"

	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoginPath page unauthenticated browsers are sent to
const LoginPath = "/login"

// RequireAuth lets only authenticated sessions through. Browsers are
// redirected to the login page, API clients get 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess != nil && sess.Authenticated {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			logger.WarnCtx(c.Request.Context(), "unauthorized api request: %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}
