package router

import (
	"net/http"

	"casemonitor/app/handler"
	"casemonitor/app/middleware"
	"casemonitor/app/web"

	"github.com/gin-gonic/gin"
)

// Router Router
type Router struct {
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	liveHandler      *handler.LiveHandler
	session          gin.HandlerFunc
}

// NewRouter creates a new Router; session is the middleware that loads the
// browser session
func NewRouter(authHandler *handler.AuthHandler, dashboardHandler *handler.DashboardHandler, liveHandler *handler.LiveHandler, session gin.HandlerFunc) *Router {
	return &Router{
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		liveHandler:      liveHandler,
		session:          session,
	}
}

// Setup sets up templates and routes
func (r *Router) Setup(engine *gin.Engine) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Trace())
	engine.Use(middleware.Logger())

	// Health check
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	browser := engine.Group("/", r.session)
	{
		browser.GET(middleware.LoginPath, r.authHandler.LoginPage)
		browser.POST(middleware.LoginPath, r.authHandler.Login)

		browser.GET("/", middleware.RequireAuth(), r.dashboardHandler.Page)

		api := browser.Group("/api/v1", middleware.RequireAuth())
		{
			api.GET("/dashboard", r.dashboardHandler.Get)
			api.GET("/dashboard/live", r.liveHandler.Stream)
			api.GET("/export/operators.xlsx", r.dashboardHandler.ExportOperators)
		}
	}

	return nil
}
