package http

import (
	"net/http"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/service"
	"copytrade-analytics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CopyTradeHandler handles HTTP requests for copy trade settings.
type CopyTradeHandler struct {
	copyTradeService service.CopyTradeService
	logger           *logger.Logger
}

// NewCopyTradeHandler creates a new CopyTradeHandler.
func NewCopyTradeHandler(copyTradeService service.CopyTradeService, logger *logger.Logger) *CopyTradeHandler {
	return &CopyTradeHandler{copyTradeService: copyTradeService, logger: logger}
}

// RegisterRoutes registers the copy trade routes to the Echo instance.
func (h *CopyTradeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/copytrade/settings/:address", h.GetSettings)
	e.POST("/copytrade/setup", h.SaveSetup)
}

// GetSettings godoc
// @Summary Get copy trade settings
// @Description Get copy trade settings for a wallet, or the defaults when none exist
// @Tags copytrade
// @Produce  json
// @Param   address  path    string true    "Wallet address"
// @Success 200 {object} dto.CopyTradeSettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /copytrade/settings/{address} [get]
func (h *CopyTradeHandler) GetSettings(c echo.Context) error {
	address := c.Param("address")

	settings, err := h.copyTradeService.GetSettings(c.Request().Context(), address)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, settings)
}

// SaveSetup godoc
// @Summary Create or update a copy trade setup
// @Description Insert or replace the copy trade setup for a wallet (last write wins)
// @Tags copytrade
// @Accept  json
// @Produce  json
// @Param   setup  body    dto.CopyTradeSetupRequest   true    "Setup to save"
// @Success 200 {object} dto.CopyTradeSetupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /copytrade/setup [post]
func (h *CopyTradeHandler) SaveSetup(c echo.Context) error {
	var req dto.CopyTradeSetupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid request payload"})
	}

	if req.WalletAddress == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "wallet_address is required"})
	}

	if err := h.copyTradeService.SaveSetup(c.Request().Context(), &req); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.CopyTradeSetupResponse{
		Status:  "success",
		Message: "Copy trade setup updated",
	})
}
