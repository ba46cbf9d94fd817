package handler

import (
	"errors"
	"net/http"

	"casemonitor/app/middleware"
	"casemonitor/internal/session"
	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgWrongPassword = "Wrong password"

// AuthHandler serves the login form
type AuthHandler struct {
	gate *session.Gate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gate *session.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

type loginView struct {
	Error string
}

// LoginPage shows the password form
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil && sess.Authenticated {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", loginView{})
}

// Login checks the submitted password and, on success, sends the browser to
// a fresh dashboard render
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)
	if sess == nil {
		logger.ErrorCtx(ctx, "login called without session middleware")
		c.HTML(http.StatusInternalServerError, "error.html", errorView{Message: msgInternal})
		return
	}

	err := h.gate.Login(ctx, sess, c.PostForm("password"))
	switch {
	case errors.Is(err, session.ErrInvalidCredential):
		c.HTML(http.StatusUnauthorized, "login.html", loginView{Error: msgWrongPassword})
	case err != nil:
		logger.ErrorCtx(ctx, "login failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", errorView{Message: msgInternal})
	default:
		c.Redirect(http.StatusSeeOther, "/")
	}
}
