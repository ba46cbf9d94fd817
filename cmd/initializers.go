package main

import (
	"fmt"
	"net/http"
	"time"

	"casemonitor/app/handler"
	"casemonitor/app/middleware"
	"casemonitor/app/router"
	"casemonitor/internal/service"
	"casemonitor/internal/session"
	"casemonitor/pkg/config"
	"casemonitor/pkg/logger"
	firestorestore "casemonitor/pkg/store/firestore"
	"casemonitor/pkg/store/memory"
	redisstore "casemonitor/pkg/store/redis"

	"github.com/gin-gonic/gin"
)

// initConfig initializes configuration
func (app *Application) initConfig() error {
	if err := config.Init(); err != nil {
		return err
	}
	app.config = config.GlobalConfig
	return nil
}

// initLogger initializes logging
func (app *Application) initLogger() error {
	if err := logger.Init(app.config.Logger); err != nil {
		return err
	}
	app.registerCleanup(func() {
		logger.Sync()
	})
	return nil
}

// initFirestore connects to the shared case store
func (app *Application) initFirestore() error {
	repo, err := firestorestore.NewRepository(app.ctx, app.config.Firestore)
	if err != nil {
		return err
	}

	app.firestoreRepo = repo
	app.registerCleanup(func() {
		repo.Close()
		logger.InfoCtx(app.ctx, "Firestore client has been closed")
	})
	return nil
}

// initSessionStore uses Redis when an address is configured, process memory otherwise
func (app *Application) initSessionStore() error {
	if app.config.Redis.Addr == "" {
		logger.InfoCtx(app.ctx, "Redis not configured, sessions are kept in memory")
		app.sessionStore = memory.NewSessionStore()
		return nil
	}

	client, err := redisstore.NewRedisClient(app.ctx, app.config.Redis)
	if err != nil {
		return err
	}

	app.sessionStore = redisstore.NewSessionRepository(client)
	app.registerCleanup(func() {
		client.Close()
		logger.InfoCtx(app.ctx, "Redis connection has been closed")
	})
	return nil
}

// initServices initializes service layer
func (app *Application) initServices() error {
	loc, err := app.config.Location()
	if err != nil {
		return err
	}

	app.gate = session.NewGate(app.config.Server.AdminPassword, app.sessionStore)
	app.dashboardService = service.NewDashboardService(service.NewFetcher(app.firestoreRepo), loc)
	return nil
}

// initHandlers initializes handler layer
func (app *Application) initHandlers() error {
	app.authHandler = handler.NewAuthHandler(app.gate)
	app.dashboardHandler = handler.NewDashboardHandler(app.dashboardService, app.config.Dashboard.Groups)
	app.liveHandler = handler.NewLiveHandler(app.dashboardService, app.config.Dashboard.LiveRefresh())
	return nil
}

// initHTTPServer initializes HTTP server
func (app *Application) initHTTPServer() error {
	gin.SetMode(app.config.Server.Mode)
	app.ginEngine = gin.New()

	r := router.NewRouter(
		app.authHandler,
		app.dashboardHandler,
		app.liveHandler,
		middleware.Session(app.gate, app.config.Session),
	)
	if err := r.Setup(app.ginEngine); err != nil {
		return fmt.Errorf("failed to set up routes: %w", err)
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}
