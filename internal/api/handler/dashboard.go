package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/service"
)

// DashboardHandler serves the aggregate stats snapshot.
type DashboardHandler struct {
	stats *service.StatsService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Get handles GET /api/v1/dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
