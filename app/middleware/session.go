package middleware

import (
	"net/http"

	"casemonitor/internal/model"
	"casemonitor/internal/session"
	"casemonitor/pkg/config"
	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
)

const sessionKey = "monitor.session"

// Session loads the browser's session from its cookie, or starts a new one,
// and keeps the cookie pointing at it. The cookie has no max age so it ends
// with the browser session.
func Session(gate *session.Gate, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cfg.CookieName)

		sess, err := gate.Load(c.Request.Context(), id)
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), "session load failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
			return
		}

		if sess.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, sess.ID, 0, "/", "", cfg.Secure, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session set by Session, nil outside of it
func CurrentSession(c *gin.Context) *model.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*model.Session)
	return sess
}
