package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/service"
)

// ReviewHandler handles weekly review endpoints.
type ReviewHandler struct {
	tracker *service.TrackerService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(tracker *service.TrackerService) *ReviewHandler {
	return &ReviewHandler{tracker: tracker}
}

// List handles GET /api/v1/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.tracker.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// Upsert handles POST /api/v1/reviews. Reviews are keyed by week_of; posting
// an existing week updates it.
func (h *ReviewHandler) Upsert(c *gin.Context) {
	var in service.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	review, err := h.tracker.UpsertReview(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Update handles PUT /api/v1/reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	var in service.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	review, err := h.tracker.UpdateReview(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete handles DELETE /api/v1/reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
