package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/service"
)

// ApplicationHandler handles job application endpoints.
type ApplicationHandler struct {
	tracker *service.TrackerService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(tracker *service.TrackerService) *ApplicationHandler {
	return &ApplicationHandler{tracker: tracker}
}

// List handles GET /api/v1/applications.
func (h *ApplicationHandler) List(c *gin.Context) {
	filters := domain.ApplicationFilters{
		Status:        c.Query("status"),
		Source:        c.Query("source"),
		Company:       c.Query("company"),
		ResumeVersion: c.Query("resume_version"),
	}

	apps, err := h.tracker.ListApplications(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// Create handles POST /api/v1/applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var in service.ApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	app, err := h.tracker.CreateApplication(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Update handles PUT /api/v1/applications/:id.
func (h *ApplicationHandler) Update(c *gin.Context) {
	var in service.ApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	app, err := h.tracker.UpdateApplication(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /api/v1/applications/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
