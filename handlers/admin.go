package handlers

import (
	"errors"
	"net/http"

	"gamelounge/services/admin"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes admin login and one-time credential setup.
type AdminHandler struct {
	Service admin.AdminService
	Logger  *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

type adminCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrMissingFields):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, admin.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
		default:
			h.Logger.Error("admin login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Init handles POST /api/admin/init, the setup-time credential bootstrap.
func (h *AdminHandler) Init(c *gin.Context) {
	var req adminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Init(c.Request.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, admin.ErrMissingFields):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			h.Logger.Error("admin init failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin credentials initialized"})
}
