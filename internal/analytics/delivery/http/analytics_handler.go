package http

import (
	"net/http"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/service"
	"copytrade-analytics/pkg/logger"
	"copytrade-analytics/pkg/utils"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles HTTP requests for per-wallet trade analytics.
type AnalyticsHandler struct {
	analyticsService service.TradeAnalyticsService
	logger           *logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.TradeAnalyticsService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, logger: logger}
}

// RegisterRoutes registers the analytics routes to the Echo instance.
func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/analytics/:address", h.GetWalletAnalytics)
}

// GetWalletAnalytics godoc
// @Summary Get wallet trade analytics
// @Description Get per-day trade buckets for a wallet over the given timeframe
// @Tags analytics
// @Produce  json
// @Param   address    path    string true    "Wallet address"
// @Param   timeframe  query   string false   "Timeframe as <N>d"   default(7d)
// @Success 200 {object} dto.WalletAnalyticsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/{address} [get]
func (h *AnalyticsHandler) GetWalletAnalytics(c echo.Context) error {
	address := c.Param("address")

	timeframe := c.QueryParam("timeframe")
	if timeframe == "" {
		timeframe = "7d"
	}

	days, err := utils.ParseTimeframeDays(timeframe)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
	}

	stats, err := h.analyticsService.GetDailyStats(c.Request().Context(), address, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, stats)
}
