package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dromero-dev/comanda-api/internal/application/service"
	"github.com/dromero-dev/comanda-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles user settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the authenticated user's settings
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles updating the authenticated user's settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Language       string `json:"language"`
		Timezone       string `json:"timezone"`
		Currency       string `json:"currency"`
		DateFormat     string `json:"date_format"`
		OrderAlerts    *bool  `json:"order_alerts"`
		LowStockAlerts *bool  `json:"low_stock_alerts"`
		Theme          string `json:"theme"`
		SessionTimeout string `json:"session_timeout"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), *userID, &service.UpdateSettingsInput{
		Language:       req.Language,
		Timezone:       req.Timezone,
		Currency:       req.Currency,
		DateFormat:     req.DateFormat,
		OrderAlerts:    req.OrderAlerts,
		LowStockAlerts: req.LowStockAlerts,
		Theme:          req.Theme,
		SessionTimeout: req.SessionTimeout,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
