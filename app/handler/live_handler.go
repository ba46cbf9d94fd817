package handler

import (
	"context"
	"net/http"
	"time"

	"casemonitor/internal/aggregate"
	"casemonitor/internal/service"
	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Default CheckOrigin: browsers may only connect from the dashboard's own origin
var upgrader = websocket.Upgrader{}

// LiveHandler pushes a freshly built dashboard over a WebSocket on every tick
type LiveHandler struct {
	dashboardService *service.DashboardService
	interval         time.Duration
}

// NewLiveHandler creates a live feed handler that rebuilds every interval
func NewLiveHandler(dashboardService *service.DashboardService, interval time.Duration) *LiveHandler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &LiveHandler{
		dashboardService: dashboardService,
		interval:         interval,
	}
}

type liveError struct {
	Error string `json:"error"`
}

// Stream sends the dashboard as JSON right away and then once per interval
// until the client goes away. Each push is built from scratch.
// @Router /api/v1/dashboard/live [get]
func (h *LiveHandler) Stream(c *gin.Context) {
	window, err := aggregate.ParseWindow(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to upgrade to websocket: %v", err)
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The client never sends anything; reading only detects the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		d, err := h.dashboardService.Build(ctx, window, h.dashboardService.Now())
		switch {
		case err != nil && ctx.Err() != nil:
			return
		case err != nil:
			logger.ErrorCtx(ctx, "live dashboard build failed: %v", err)
			err = ws.WriteJSON(liveError{Error: msgInternal})
		default:
			err = ws.WriteJSON(d)
		}
		if err != nil {
			logger.DebugCtx(ctx, "live feed closed: %v", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
