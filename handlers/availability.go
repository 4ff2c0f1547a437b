package handlers

import (
	"net/http"

	"deskly/models"
	"deskly/services/booking"
	"deskly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the slot decomposition over HTTP.
type AvailabilityHandler struct {
	Svc booking.AvailabilityService
}

// NewAvailabilityHandler constructs the handler.
func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetSlotsHandler expands one space/date availability query into
// bookable slots.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	var query models.AvailabilityQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slots, err := h.Svc.GetAvailableSlots(c.Request.Context(), query)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
