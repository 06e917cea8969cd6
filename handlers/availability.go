package handlers

import (
	"net/http"

	settingsRepo "gamelounge/database/repository/settings"
	"gamelounge/models"
	"gamelounge/services/booking"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the read-only availability view.
type AvailabilityHandler struct {
	Service  booking.BookingService
	Settings settingsRepo.SettingsRepository
	Logger   *zap.Logger
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc booking.BookingService, settings settingsRepo.SettingsRepository, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Settings: settings, Logger: logger}
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Date parameter is required")
		return
	}

	slots, err := h.Service.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("availability lookup failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability")
		return
	}

	inv, err := h.Settings.GetSetupInventory(c.Request.Context())
	if err != nil {
		h.Logger.Error("setup inventory lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load setup availability")
		return
	}
	setups := models.DefaultSetupInventory().Setups
	if inv != nil {
		setups = inv.Setups
	}

	c.JSON(http.StatusOK, gin.H{
		"date":               date,
		"available_slots":    slots,
		"setup_availability": setups,
	})
}
