package handlers

import (
	"net/http"

	settingsRepo "gamelounge/database/repository/settings"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupHandler serves the setup inventory flags.
type SetupHandler struct {
	Settings settingsRepo.SettingsRepository
	Logger   *zap.Logger
}

// NewSetupHandler creates a SetupHandler.
func NewSetupHandler(settings settingsRepo.SettingsRepository, logger *zap.Logger) *SetupHandler {
	return &SetupHandler{Settings: settings, Logger: logger}
}

// GetSetupAvailability handles GET /api/setup-availability. Seeds the
// all-enabled default when no record exists yet.
func (h *SetupHandler) GetSetupAvailability(c *gin.Context) {
	inv, err := h.Settings.EnsureSetupInventory(c.Request.Context())
	if err != nil {
		h.Logger.Error("setup inventory lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load setup availability")
		return
	}
	c.JSON(http.StatusOK, inv.Setups)
}

// UpdateSetupAvailability handles PUT /api/setup-availability (admin).
// Partial flag updates are merged into the record.
func (h *SetupHandler) UpdateSetupAvailability(c *gin.Context) {
	var flags map[string]bool
	if err := c.ShouldBindJSON(&flags); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.Settings.UpdateSetupFlags(c.Request.Context(), flags)
	if err != nil {
		h.Logger.Error("setup inventory update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update setup availability")
		return
	}
	c.JSON(http.StatusOK, inv.Setups)
}
