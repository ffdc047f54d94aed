package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/service"
)

// SearchHandler handles the job-search pipeline and its sessions.
type SearchHandler struct {
	searchService  *service.JobSearchService
	sessionService *service.SessionService
}

// NewSearchHandler creates a new search handler.
// Parameters:
//   - searchService: search pipeline service.
//   - sessionService: session store for reject/confirm flows.
// Returns:
//   - *SearchHandler: initialized handler.
func NewSearchHandler(searchService *service.JobSearchService, sessionService *service.SessionService) *SearchHandler {
	return &SearchHandler{
		searchService:  searchService,
		sessionService: sessionService,
	}
}

// SearchJobs handles POST /api/v1/search-jobs.
// Runs one search attempt and opens a session holding the result set.
func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var req service.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query is required",
		})
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	view := h.sessionService.Start(&req, result)
	if result.Message != "" {
		c.JSON(http.StatusOK, gin.H{
			"session": view,
			"message": result.Message,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// GetSession handles GET /api/v1/search-sessions/:id.
func (h *SearchHandler) GetSession(c *gin.Context) {
	view, err := h.sessionService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RejectListing handles POST /api/v1/search-sessions/:id/listings/:listingID/reject.
// Rejection is idempotent and one-way.
func (h *SearchHandler) RejectListing(c *gin.Context) {
	if err := h.sessionService.Reject(c.Param("id"), c.Param("listingID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": c.Param("listingID")})
}

// ConfirmListing handles POST /api/v1/search-sessions/:id/listings/:listingID/confirm.
// Creates an application from the listing; the listing stays visible.
func (h *SearchHandler) ConfirmListing(c *gin.Context) {
	var overrides service.ConfirmOverrides
	// Body is optional; defaults apply when absent. A present but malformed
	// body is still a client error.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&overrides); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	}

	app, err := h.sessionService.Confirm(c.Request.Context(), c.Param("id"), c.Param("listingID"), overrides)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}
