package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/services"
)

// RegistrationHandler handles public registration intake and admin listings.
type RegistrationHandler struct {
	registrationService services.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Register handles POST /register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reg, err := h.registrationService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "This email is already registered", "Registration not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ticketCode": reg.TicketCode})
}

// Lookup handles GET /register?ticket=|email= and returns the reduced
// public view.
func (h *RegistrationHandler) Lookup(c *gin.Context) {
	reg, err := h.registrationService.Lookup(c.Request.Context(), c.Query("ticket"), c.Query("email"))
	if err != nil {
		respondError(c, err, "", "Registration not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "registration": reg})
}

// List handles GET /admin/registrations?status=&category=&search=
func (h *RegistrationHandler) List(c *gin.Context) {
	regs, err := h.registrationService.List(c.Request.Context(), c.Query("status"), c.Query("category"), c.Query("search"))
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": regs, "total": len(regs)})
}

// Count handles GET /admin/registrations/count
func (h *RegistrationHandler) Count(c *gin.Context) {
	count, err := h.registrationService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
