package handlers

import (
	"net/http"

	settingsRepo "gamelounge/database/repository/settings"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves the pricing table.
type PricingHandler struct {
	Settings settingsRepo.SettingsRepository
	Logger   *zap.Logger
}

// NewPricingHandler creates a PricingHandler.
func NewPricingHandler(settings settingsRepo.SettingsRepository, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Settings: settings, Logger: logger}
}

// GetPricing handles GET /api/pricing. Seeds the default rates when no record
// exists yet.
func (h *PricingHandler) GetPricing(c *gin.Context) {
	table, err := h.Settings.EnsurePricingTable(c.Request.Context())
	if err != nil {
		h.Logger.Error("pricing lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load pricing")
		return
	}
	c.JSON(http.StatusOK, table.Rates)
}

// UpdatePricing handles PUT /api/pricing (admin). Partial rate updates are
// merged into the record.
func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	var rates map[string]int
	if err := c.ShouldBindJSON(&rates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	table, err := h.Settings.UpdatePricingRates(c.Request.Context(), rates)
	if err != nil {
		h.Logger.Error("pricing update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update pricing")
		return
	}
	c.JSON(http.StatusOK, table.Rates)
}
