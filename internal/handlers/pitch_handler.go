package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/services"
)

// PitchHandler handles public pitch intake and admin review.
type PitchHandler struct {
	pitchService services.PitchService
}

// NewPitchHandler creates a new PitchHandler
func NewPitchHandler(pitchService services.PitchService) *PitchHandler {
	return &PitchHandler{pitchService: pitchService}
}

// Submit handles POST /pitch
func (h *PitchHandler) Submit(c *gin.Context) {
	var req models.PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pitch, err := h.pitchService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "A pitch from this email has already been submitted", "Pitch not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "submissionId": pitch.SubmissionID})
}

// List handles GET /admin/pitches?status=&search=
func (h *PitchHandler) List(c *gin.Context) {
	pitches, err := h.pitchService.List(c.Request.Context(), c.Query("status"), c.Query("search"))
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pitches": pitches, "total": len(pitches)})
}

type pitchStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /admin/pitches/:id/status
func (h *PitchHandler) UpdateStatus(c *gin.Context) {
	var req pitchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	pitch, err := h.pitchService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "", "Pitch not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pitch": pitch})
}

// Count handles GET /admin/pitches/count
func (h *PitchHandler) Count(c *gin.Context) {
	count, err := h.pitchService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
