package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"casemonitor/internal/aggregate"
	"casemonitor/internal/export"
	"casemonitor/internal/model"
	"casemonitor/internal/presenter"
	"casemonitor/internal/service"
	"casemonitor/pkg/config"
	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal     = "The case store could not be read. Try again in a moment."
	msgInvalidRange = "Unknown range. Use today, 7d or 30d."
)

type errorView struct {
	Message string
}

// DashboardHandler renders the monitoring dashboard
type DashboardHandler struct {
	dashboardService *service.DashboardService
	groups           []config.GroupConfig
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, groups []config.GroupConfig) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		groups:           groups,
	}
}

func (h *DashboardHandler) build(c *gin.Context) (*service.Dashboard, int, error) {
	window, err := aggregate.ParseWindow(c.Query("range"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	d, err := h.dashboardService.Build(c.Request.Context(), window, h.dashboardService.Now())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to build dashboard: %v", err)
		return nil, http.StatusInternalServerError, err
	}
	return d, http.StatusOK, nil
}

// Page renders the dashboard HTML
// @Router / [get]
func (h *DashboardHandler) Page(c *gin.Context) {
	d, status, err := h.build(c)
	if err != nil {
		msg := msgInternal
		if status == http.StatusBadRequest {
			msg = msgInvalidRange
		}
		c.HTML(status, "error.html", errorView{Message: msg})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", presenter.Build(d, h.groups))
}

// Get returns the dashboard as JSON
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	d, status, err := h.build(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, d)
}

// ExportOperators downloads the operator ranking and daily table as xlsx
// @Router /api/v1/export/operators.xlsx [get]
func (h *DashboardHandler) ExportOperators(c *gin.Context) {
	d, status, err := h.build(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteOperatorWorkbook(&buf, d); err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to export operators: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("operators-%s-%s.xlsx", d.Window.Param(), d.GeneratedAt.Format(model.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
