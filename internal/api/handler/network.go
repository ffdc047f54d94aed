package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/service"
)

// NetworkHandler handles network contact endpoints.
type NetworkHandler struct {
	tracker *service.TrackerService
	stats   *service.StatsService
}

// NewNetworkHandler creates a new network handler.
func NewNetworkHandler(tracker *service.TrackerService, stats *service.StatsService) *NetworkHandler {
	return &NetworkHandler{tracker: tracker, stats: stats}
}

// List handles GET /api/v1/contacts.
func (h *NetworkHandler) List(c *gin.Context) {
	filters := domain.ContactFilters{
		Outcome: c.Query("outcome"),
	}
	if v := c.Query("responded"); v != "" {
		responded, err := strconv.ParseBool(v)
		if err == nil {
			filters.Responded = &responded
		}
	}

	contacts, err := h.tracker.ListContacts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.stats.Network(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"stats":    stats,
	})
}

// Create handles POST /api/v1/contacts.
func (h *NetworkHandler) Create(c *gin.Context) {
	var in service.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.tracker.CreateContact(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// Update handles PUT /api/v1/contacts/:id.
func (h *NetworkHandler) Update(c *gin.Context) {
	var in service.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.tracker.UpdateContact(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /api/v1/contacts/:id.
func (h *NetworkHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
