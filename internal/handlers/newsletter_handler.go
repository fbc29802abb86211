package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/services"
)

// NewsletterHandler handles newsletter signups and the admin listing.
type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe handles POST /newsletter
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.newsletterService.Subscribe(c.Request.Context(), &req); err != nil {
		respondError(c, err, "This email is already subscribed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Unsubscribe handles DELETE /newsletter?email=
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if err := h.newsletterService.Unsubscribe(c.Request.Context(), email); err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List handles GET /admin/newsletter?status=&search=
func (h *NewsletterHandler) List(c *gin.Context) {
	subs, err := h.newsletterService.List(c.Request.Context(), c.Query("status"), c.Query("search"))
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs, "total": len(subs)})
}

// Count handles GET /admin/newsletter/count
func (h *NewsletterHandler) Count(c *gin.Context) {
	count, err := h.newsletterService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
