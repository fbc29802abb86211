package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/middleware"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/services"
)

// publicCacheControl is set on the unauthenticated content reads so pages can
// be rendered from a short-lived cache.
const publicCacheControl = "public, max-age=60"

// ContentHandler handles speakers, schedule, and partners endpoints.
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func actor(c *gin.Context) string {
	return c.GetString(middleware.ContextEmail)
}

// --- speakers ---

// GetSpeakers handles GET /admin/speakers
func (h *ContentHandler) GetSpeakers(c *gin.Context) {
	doc, err := h.contentService.GetSpeakers(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetPublicSpeakers handles GET /content/speakers
func (h *ContentHandler) GetPublicSpeakers(c *gin.Context) {
	doc, err := h.contentService.GetSpeakers(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.Header("Cache-Control", publicCacheControl)
	c.JSON(http.StatusOK, gin.H{"speakers": doc.Items})
}

// CreateSpeaker handles POST /admin/speakers
func (h *ContentHandler) CreateSpeaker(c *gin.Context) {
	var speaker models.Speaker
	if err := c.ShouldBindJSON(&speaker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.contentService.CreateSpeaker(c.Request.Context(), actor(c), speaker)
	if err != nil {
		respondError(c, err, "", "Speaker not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "speaker": created})
}

// UpdateSpeaker handles PUT /admin/speakers
func (h *ContentHandler) UpdateSpeaker(c *gin.Context) {
	var speaker models.Speaker
	if err := c.ShouldBindJSON(&speaker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.contentService.UpdateSpeaker(c.Request.Context(), actor(c), speaker)
	if err != nil {
		respondError(c, err, "", "Speaker not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "speaker": updated})
}

// DeleteSpeaker handles DELETE /admin/speakers?id=
func (h *ContentHandler) DeleteSpeaker(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.contentService.DeleteSpeaker(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err, "", "Speaker not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- schedule ---

// GetSchedule handles GET /admin/schedule
func (h *ContentHandler) GetSchedule(c *gin.Context) {
	doc, err := h.contentService.GetSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetPublicSchedule handles GET /content/schedule
func (h *ContentHandler) GetPublicSchedule(c *gin.Context) {
	doc, err := h.contentService.GetSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.Header("Cache-Control", publicCacheControl)
	c.JSON(http.StatusOK, gin.H{"sessions": doc.Items})
}

// CreateSession handles POST /admin/schedule
func (h *ContentHandler) CreateSession(c *gin.Context) {
	var sess models.ScheduleSession
	if err := c.ShouldBindJSON(&sess); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.contentService.CreateSession(c.Request.Context(), actor(c), sess)
	if err != nil {
		respondError(c, err, "", "Session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": created})
}

// UpdateSession handles PUT /admin/schedule
func (h *ContentHandler) UpdateSession(c *gin.Context) {
	var sess models.ScheduleSession
	if err := c.ShouldBindJSON(&sess); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.contentService.UpdateSession(c.Request.Context(), actor(c), sess)
	if err != nil {
		respondError(c, err, "", "Session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": updated})
}

// DeleteSession handles DELETE /admin/schedule?id=
func (h *ContentHandler) DeleteSession(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.contentService.DeleteSession(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err, "", "Session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- partners ---

// GetPartners handles GET /admin/partners
func (h *ContentHandler) GetPartners(c *gin.Context) {
	doc, err := h.contentService.GetPartners(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetPublicPartners handles GET /content/partners
func (h *ContentHandler) GetPublicPartners(c *gin.Context) {
	doc, err := h.contentService.GetPartners(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.Header("Cache-Control", publicCacheControl)
	c.JSON(http.StatusOK, gin.H{"partners": doc.Items})
}

// CreatePartner handles POST /admin/partners
func (h *ContentHandler) CreatePartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.contentService.CreatePartner(c.Request.Context(), actor(c), partner)
	if err != nil {
		respondError(c, err, "", "Partner not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partner": created})
}

// UpdatePartner handles PUT /admin/partners
func (h *ContentHandler) UpdatePartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.contentService.UpdatePartner(c.Request.Context(), actor(c), partner)
	if err != nil {
		respondError(c, err, "", "Partner not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partner": updated})
}

// DeletePartner handles DELETE /admin/partners?id=
func (h *ContentHandler) DeletePartner(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.contentService.DeletePartner(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err, "", "Partner not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
