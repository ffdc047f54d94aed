package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/service"
)

// RevenueHandler handles revenue week endpoints.
type RevenueHandler struct {
	tracker *service.TrackerService
	stats   *service.StatsService
}

// NewRevenueHandler creates a new revenue handler.
func NewRevenueHandler(tracker *service.TrackerService, stats *service.StatsService) *RevenueHandler {
	return &RevenueHandler{tracker: tracker, stats: stats}
}

// List handles GET /api/v1/revenue.
func (h *RevenueHandler) List(c *gin.Context) {
	weeks, err := h.tracker.ListRevenueWeeks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.stats.Revenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weeks": weeks,
		"stats": stats,
	})
}

// Upsert handles POST /api/v1/revenue. Weeks are keyed by week_of; posting
// an existing week updates it.
func (h *RevenueHandler) Upsert(c *gin.Context) {
	var in service.RevenueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	week, err := h.tracker.UpsertRevenueWeek(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// Update handles PUT /api/v1/revenue/:id.
func (h *RevenueHandler) Update(c *gin.Context) {
	var in service.RevenueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	week, err := h.tracker.UpdateRevenueWeek(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// Delete handles DELETE /api/v1/revenue/:id.
func (h *RevenueHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteRevenueWeek(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
