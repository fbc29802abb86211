package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/services"
)

// SponsorHandler handles the tiered sponsors endpoints.
type SponsorHandler struct {
	sponsorService services.SponsorService
}

// NewSponsorHandler creates a new SponsorHandler
func NewSponsorHandler(sponsorService services.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorService: sponsorService}
}

// GetSponsors handles GET /admin/sponsors
func (h *SponsorHandler) GetSponsors(c *gin.Context) {
	doc, err := h.sponsorService.GetSponsors(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetPublicSponsors handles GET /content/sponsors
func (h *SponsorHandler) GetPublicSponsors(c *gin.Context) {
	doc, err := h.sponsorService.GetSponsors(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.Header("Cache-Control", publicCacheControl)
	c.JSON(http.StatusOK, gin.H{"sponsors": doc.Tiers})
}

// CreateSponsor handles POST /admin/sponsors
func (h *SponsorHandler) CreateSponsor(c *gin.Context) {
	var sponsor models.Sponsor
	if err := c.ShouldBindJSON(&sponsor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.sponsorService.CreateSponsor(c.Request.Context(), actor(c), sponsor)
	if err != nil {
		respondError(c, err, "", "Sponsor not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sponsor": created})
}

// UpdateSponsor handles PUT /admin/sponsors
func (h *SponsorHandler) UpdateSponsor(c *gin.Context) {
	var sponsor models.Sponsor
	if err := c.ShouldBindJSON(&sponsor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.sponsorService.UpdateSponsor(c.Request.Context(), actor(c), sponsor)
	if err != nil {
		respondError(c, err, "", "Sponsor not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sponsor": updated})
}

// DeleteSponsor handles DELETE /admin/sponsors?id=&tier=
func (h *SponsorHandler) DeleteSponsor(c *gin.Context) {
	id := c.Query("id")
	tier := c.Query("tier")
	if id == "" || tier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and tier are required"})
		return
	}
	if err := h.sponsorService.DeleteSponsor(c.Request.Context(), actor(c), tier, id); err != nil {
		respondError(c, err, "", "Sponsor not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type reorderRequest struct {
	Tier     string           `json:"tier" binding:"required"`
	Sponsors []models.Sponsor `json:"sponsors"`
}

// ReorderSponsors handles PATCH /admin/sponsors, replacing one tier's array
// wholesale with the caller-supplied ordering.
func (h *SponsorHandler) ReorderSponsors(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.sponsorService.ReorderTier(c.Request.Context(), actor(c), req.Tier, req.Sponsors); err != nil {
		respondError(c, err, "", "Sponsor not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
