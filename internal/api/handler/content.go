package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/service"
)

// ContentHandler handles content calendar endpoints.
type ContentHandler struct {
	tracker *service.TrackerService
	stats   *service.StatsService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(tracker *service.TrackerService, stats *service.StatsService) *ContentHandler {
	return &ContentHandler{tracker: tracker, stats: stats}
}

// List handles GET /api/v1/content.
func (h *ContentHandler) List(c *gin.Context) {
	var filters domain.ContentFilters
	if v := c.Query("week_of"); v != "" {
		weekOf, err := time.Parse(time.RFC3339, v)
		if err != nil {
			weekOf, err = time.Parse("2006-01-02", v)
		}
		if err == nil {
			filters.WeekOf = &weekOf
		}
	}
	if v := c.Query("done"); v != "" {
		done, err := strconv.ParseBool(v)
		if err == nil {
			filters.Done = &done
		}
	}

	posts, err := h.tracker.ListContentPosts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.stats.Content(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"stats": stats,
	})
}

// Create handles POST /api/v1/content.
func (h *ContentHandler) Create(c *gin.Context) {
	var in service.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post, err := h.tracker.CreateContentPost(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/v1/content/:id.
func (h *ContentHandler) Update(c *gin.Context) {
	var in service.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post, err := h.tracker.UpdateContentPost(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/v1/content/:id.
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteContentPost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
